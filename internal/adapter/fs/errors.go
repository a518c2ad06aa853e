package fs

import "errors"

// ErrNotText is returned by ReadFile for content that is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

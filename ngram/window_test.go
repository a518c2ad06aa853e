package ngram

import (
	"errors"
	"slices"
	"testing"
)

func collectWindows[T any](t *testing.T, seq []T, size, step int) [][]T {
	t.Helper()
	windows, err := SlidingWindow(seq, size, step)
	if err != nil {
		t.Fatalf("SlidingWindow(%v, %d, %d): %v", seq, size, step, err)
	}
	return slices.Collect(windows)
}

func TestSlidingWindow(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		size int
		step int
		want [][]int
	}{
		{"step one", []int{1, 2, 3, 4, 5}, 2, 1, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}},
		{"step two drops tail", []int{1, 2, 3}, 2, 2, [][]int{{1, 2}}},
		{"exact fit", []int{1, 2, 3}, 3, 1, [][]int{{1, 2, 3}}},
		{"window larger than input", []int{1, 2}, 3, 1, nil},
		{"empty input", nil, 1, 1, nil},
		{"step larger than window", []int{1, 2, 3, 4, 5, 6, 7}, 2, 3, [][]int{{1, 2}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectWindows(t, tt.seq, tt.size, tt.step)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("window %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSlidingWindow_Strings(t *testing.T) {
	got := collectWindows(t, []string{"a", "b", "c"}, 2, 1)
	if len(got) != 2 || !slices.Equal(got[0], []string{"a", "b"}) || !slices.Equal(got[1], []string{"b", "c"}) {
		t.Errorf("unexpected windows: %v", got)
	}
}

func TestSlidingWindow_InvalidArguments(t *testing.T) {
	cases := []struct{ size, step int }{
		{0, 1},
		{-1, 1},
		{2, 0},
		{2, -3},
	}
	for _, c := range cases {
		seq, err := SlidingWindow([]int{1, 2, 3}, c.size, c.step)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("size=%d step=%d: expected ErrInvalidArgument, got %v", c.size, c.step, err)
		}
		if seq != nil {
			t.Errorf("size=%d step=%d: expected nil sequence", c.size, c.step)
		}
	}
}

func TestSlidingWindow_Lazy(t *testing.T) {
	windows, err := SlidingWindow([]int{1, 2, 3, 4, 5}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	var seen [][]int
	for w := range windows {
		seen = append(seen, w)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 || !slices.Equal(seen[1], []int{2, 3}) {
		t.Errorf("early stop produced %v", seen)
	}
}

func TestSlidingWindow_CopiesWindows(t *testing.T) {
	input := []int{1, 2, 3}
	got := collectWindows(t, input, 2, 1)
	got[0][1] = 99
	if input[1] != 2 {
		t.Errorf("mutating a window changed the input: %v", input)
	}
	if got[1][0] != 2 {
		t.Errorf("windows share storage: %v", got)
	}
}

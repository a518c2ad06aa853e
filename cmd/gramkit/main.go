package main

import (
	"gramkit/internal/cli"
)

func main() {
	cli.Execute()
}

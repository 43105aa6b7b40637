package main

import (
	"os"

	"github.com/hailam/chessplay/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}

// Linecursor - Line Streaming Utility
//
// Linecursor streams text files line by line with position tracking,
// lookahead, and configurable filtering of blank and comment lines.
package main

import (
	"os"

	"linecursor/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

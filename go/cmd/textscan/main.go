// textscan is a small diagnostic tool around the scanning primitives: it
// reads text and reports the lexical tokens the scanner extracts from it.
package main

import (
	"log/slog"
	"os"

	"github.com/textscan/textscan/go/cmd/textscan/command"
)

func main() {
	if err := command.GetRootCommand().Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/asandhu/theoryprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

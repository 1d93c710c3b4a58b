package main

import (
	"fmt"
	"os"
	"schack/ui"
)

func main() {
	if err := ui.RunSchack(); err != nil {
		fmt.Fprintf(os.Stderr, "schack: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"calendar-converter/cmd/cli/root"
)

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"wasi.team/prng/config"
)

// Print a figlet "prng" banner to stderr, stdout is reserved for data.
func printBanner() {
	fmt.Fprintln(os.Stderr, "   _ __ _ _ _ _  __ _ ")
	fmt.Fprintln(os.Stderr, "  | '_ \\ '_| ' \\/ _` |")
	fmt.Fprintln(os.Stderr, "  | .__/_| |_||_\\__, |")
	fmt.Fprintln(os.Stderr, "  |_|           |___/ ")
	fmt.Fprintln(os.Stderr)
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "   %s\n", config.Version)
	fmt.Fprintln(os.Stderr)
}

// Command parsesheet parses the OCR text of a sign-in sheet and prints the
// result as JSON. Each file argument is one page, in order; with no files the
// text is read from stdin.
//
// Usage:
//
//	parsesheet [--date-format us|iso] [--pretty] [--review] [-v|--verbose] [page.txt ...]
//	parsesheet adjust [--pretty] TIME_IN TIME_OUT
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

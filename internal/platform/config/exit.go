package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exitf writes a formatted error message, prefixed with the program name, to
// stderr and exits with code 1.
func Exitf(format string, args ...any) {
	exitf(os.Stderr, os.Exit, format, args...)
}

func exitf(w io.Writer, exit func(int), format string, args ...any) {
	fmt.Fprintf(w, "%s: "+format+"\n", append([]any{filepath.Base(os.Args[0])}, args...)...)
	exit(1)
}

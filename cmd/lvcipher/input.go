package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readText picks the input in priority order: --text, --file, stdin.
// One trailing newline from a file or stdin is dropped so piped input and
// echo output work for decrypt, which does not filter.
func readText(text string, textSet bool, file string, stdin io.Reader) (string, error) {
	if textSet {
		return text, nil
	}
	var (
		data []byte
		err  error
	)
	if file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %q: %w", file, err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// isTerminal reports whether r is a terminal. Prompts are printed only then.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

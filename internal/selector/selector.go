// Package selector maps a feature set to the exact lines the program prints.
package selector

import (
	"fmt"
	"io"

	"luckyprint/internal/features"
	"luckyprint/internal/lucky"
)

const (
	headlineDefault = "Hello, world!"
	headlinePrint42 = "42"
)

// Resolve computes the output lines for set. The headline rule and the lucky
// line rule are independent, so every combination of the closed feature set
// has a defined result. src is consulted exactly once, and only when the
// lucky feature is on.
func Resolve(set features.Set, src lucky.Source) []string {
	lines := make([]string, 0, 2)
	if set.Print42 {
		lines = append(lines, headlinePrint42)
	} else {
		lines = append(lines, headlineDefault)
	}
	if set.Lucky {
		lines = append(lines, fmt.Sprintf("Your lucky number: %d", src.Draw()))
	}
	return lines
}

// Print writes each line to w, newline-terminated. The only failure mode is
// the writer's own error, which is propagated unchanged in meaning.
func Print(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

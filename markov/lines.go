package markov

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines opens a text file and returns its non-blank lines.
func ReadLines(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("can't open file: %w", err)
	}
	defer file.Close()
	return ScanLines(file)
}

// ScanLines returns the non-blank lines of r with surrounding whitespace
// trimmed.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

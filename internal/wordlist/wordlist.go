// Package wordlist loads the embedded word dictionary.
package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	_ "embed"
)

// Duplicates in the dictionary are intentional: selection is uniform by
// index, so repeating a word biases the draw toward it.
//
//go:embed words.txt
var wordsData []byte

// Load parses the embedded dictionary.
func Load() ([]string, error) {
	words, err := Parse(bytes.NewReader(wordsData))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded word list: %w", err)
	}
	return words, nil
}

// Parse reads one word per line, trims surrounding whitespace, and skips
// blank lines. Duplicates are preserved. An empty result is an error.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

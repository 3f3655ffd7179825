// Package wordlist holds the passphrase vocabulary: an ordered, immutable
// sequence of words loaded once at startup and shared read-only across
// requests.
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var embedded []byte

var ErrEmptyWordList = errors.New("word list contains no words")

// Store is an immutable ordered word list. It must not be mutated after
// construction; concurrent reads are safe without locking.
type Store struct {
	words []string
}

// Embedded builds a Store from the word list bundled into the binary.
func Embedded() (*Store, error) {
	return parse(bytes.NewReader(embedded))
}

// New builds a Store from an in-memory slice, applying the same cleanup as
// file loading: words are trimmed and blanks dropped.
func New(words []string) (*Store, error) {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyWordList
	}
	return &Store{words: cleaned}, nil
}

// Load builds a Store from a newline-delimited text file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	s, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	return s, nil
}

func parse(r io.Reader) (*Store, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	return &Store{words: words}, nil
}

// Words returns the underlying word slice. Callers must treat it as
// read-only.
func (s *Store) Words() []string {
	return s.words
}

// Len reports the number of words in the list.
func (s *Store) Len() int {
	return len(s.words)
}

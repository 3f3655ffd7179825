// Package passphrase builds human-memorable passphrases from a word list
// using cryptographically secure sampling.
package passphrase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/miscapi/miscapi-go/internal/random"
	"github.com/miscapi/miscapi-go/internal/wordlist"
)

// CaseMode selects the casing transform applied to each chosen word.
// Unknown values behave like CaseTitle rather than failing; callers that
// want strict validation must check before calling Compose.
type CaseMode string

const (
	CaseLower CaseMode = "lower"
	CaseUpper CaseMode = "upper"
	CaseTitle CaseMode = "title"
	CaseCamel CaseMode = "camel"
)

// symbolChars is the candidate set for symbol injection. Any of these that
// appear in the configured separator are filtered out before choosing.
const symbolChars = "!@#$%&"

var (
	ErrNoWords            = errors.New("passphrase must contain at least one word")
	ErrNoCandidateSymbols = errors.New("separator excludes every candidate symbol")
)

// Config describes a single passphrase request. It is constructed and
// consumed within one request; nothing is retained.
type Config struct {
	Words         int
	IncludeDigit  bool
	IncludeSymbol bool
	Separator     string
	Case          CaseMode
}

// DefaultConfig mirrors the service defaults: four title-cased words joined
// with a hyphen, no digit or symbol.
func DefaultConfig() Config {
	return Config{Words: 4, Separator: "-", Case: CaseTitle}
}

// Composer generates passphrases from an immutable word list. Safe for
// concurrent use: the store is read-only and the source is stateless.
type Composer struct {
	store *wordlist.Store
	src   random.Source
}

// NewComposer creates a Composer over the given word list and entropy source.
func NewComposer(store *wordlist.Store, src random.Source) *Composer {
	return &Composer{store: store, src: src}
}

// Compose builds one passphrase. Draw order is fixed: word sample, then
// digit position and digit, then symbol position and symbol. Given the same
// entropy draws and config the output is identical, which is what the tests
// rely on. Compose never returns a partially built passphrase: any error
// aborts before output.
func (c *Composer) Compose(cfg Config) (string, error) {
	if cfg.Words < 1 {
		return "", ErrNoWords
	}

	words, err := random.Sample(c.src, c.store.Words(), cfg.Words)
	if err != nil {
		return "", err
	}

	applyCase(words, cfg.Case)

	if cfg.IncludeDigit {
		i, err := random.IntInRange(c.src, 0, len(words)-1)
		if err != nil {
			return "", err
		}
		d, err := random.IntInRange(c.src, 0, 9)
		if err != nil {
			return "", err
		}
		words[i] += strconv.Itoa(d)
	}

	if cfg.IncludeSymbol {
		// Independent draw: the symbol may land on the same word as the digit.
		i, err := random.IntInRange(c.src, 0, len(words)-1)
		if err != nil {
			return "", err
		}
		candidates := symbolCandidates(cfg.Separator)
		if len(candidates) == 0 {
			return "", ErrNoCandidateSymbols
		}
		sym, err := random.Choice(c.src, candidates)
		if err != nil {
			return "", err
		}
		words[i] += string(sym)
	}

	return strings.Join(words, cfg.Separator), nil
}

// symbolCandidates drops every candidate symbol that occurs anywhere in the
// separator so the injected symbol can never be confused with a join point.
func symbolCandidates(separator string) []rune {
	out := make([]rune, 0, len(symbolChars))
	for _, r := range symbolChars {
		if strings.ContainsRune(separator, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func applyCase(words []string, mode CaseMode) {
	switch mode {
	case CaseLower:
		for i := range words {
			words[i] = strings.ToLower(words[i])
		}
	case CaseUpper:
		for i := range words {
			words[i] = strings.ToUpper(words[i])
		}
	case CaseCamel:
		// Title-case everything, then fully lowercase the first word. The
		// separator is still applied as configured; camel does not strip it.
		for i := range words {
			words[i] = titleWord(words[i])
		}
		words[0] = strings.ToLower(words[0])
	default:
		// CaseTitle, and the documented fallback for unknown modes.
		for i := range words {
			words[i] = titleWord(words[i])
		}
	}
}

// titleWord uppercases the first rune and lowercases the rest.
func titleWord(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

package service

import (
	"github.com/google/uuid"

	"github.com/miscapi/miscapi-go/internal/passphrase"
	"github.com/miscapi/miscapi-go/internal/random"
)

// letterChars is the alphabet for /random-string: ASCII letters only.
const letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomService exposes the random-value operations the handlers call.
// Stateless apart from the injected entropy source and composer; safe for
// concurrent use.
type RandomService struct {
	src      random.Source
	composer *passphrase.Composer
}

// NewRandomService creates a RandomService.
func NewRandomService(src random.Source, composer *passphrase.Composer) *RandomService {
	return &RandomService{src: src, composer: composer}
}

// FlipCoin returns 0 or 1 with equal probability.
func (s *RandomService) FlipCoin() (int, error) {
	return random.IntInRange(s.src, 0, 1)
}

// RollDice returns a value in [1, sides].
func (s *RandomService) RollDice(sides int) (int, error) {
	return random.IntInRange(s.src, 1, sides)
}

// NumberInRange returns a value in [min, max], both inclusive.
func (s *RandomService) NumberInRange(min, max int) (int, error) {
	return random.IntInRange(s.src, min, max)
}

// LetterString returns a string of length random ASCII letters.
func (s *RandomService) LetterString(length int) (string, error) {
	letters := []byte(letterChars)
	out := make([]byte, length)
	for i := range out {
		ch, err := random.Choice(s.src, letters)
		if err != nil {
			return "", err
		}
		out[i] = ch
	}
	return string(out), nil
}

// UUIDs returns count random version-4 UUIDs. uuid.NewString reads from
// crypto/rand, so these sit on the same entropy contract as everything else.
func (s *RandomService) UUIDs(count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}

// Passphrase composes a passphrase for the given configuration.
func (s *RandomService) Passphrase(cfg passphrase.Config) (string, error) {
	return s.composer.Compose(cfg)
}

// Package random provides cryptographically secure uniform sampling
// primitives: single-element choice, bounded integer draws, and
// without-replacement sampling. Every operation draws its entropy through a
// Source, so callers can substitute a scripted source in tests.
package random

import "errors"

var (
	ErrEmptyInput     = errors.New("cannot choose from an empty set of items")
	ErrInvalidRange   = errors.New("max must not be less than min")
	ErrSampleTooLarge = errors.New("sample size cannot exceed the number of available items")
)

// Choice returns one element of items, uniformly at random.
func Choice[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	i, err := src.UniformInt(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// IntInRange returns an integer in [min, max], both ends inclusive.
func IntInRange(src Source, min, max int) (int, error) {
	if max < min {
		return 0, ErrInvalidRange
	}
	span := max - min + 1
	n, err := src.UniformInt(span)
	if err != nil {
		return 0, err
	}
	return min + n, nil
}

// Sample returns count distinct elements of items, uniformly at random,
// in order of selection. It rejection-samples over indices: repeats are
// skipped until count distinct positions have been drawn. Expected draws
// degrade as count approaches len(items), which is acceptable here because
// populations (word lists, alphabets) are large relative to sample sizes.
func Sample[T any](src Source, items []T, count int) ([]T, error) {
	if count > len(items) {
		return nil, ErrSampleTooLarge
	}

	picked := make([]T, 0, count)
	seen := make(map[int]struct{}, count)

	for len(picked) < count {
		i, err := src.UniformInt(len(items))
		if err != nil {
			return nil, err
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		picked = append(picked, items[i])
	}

	return picked, nil
}

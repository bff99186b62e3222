package tree

import "math/rand/v2"

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is the goroutine-safe, process-wide generator.
var DefaultSource Source = globalSource{}

// Shuffle reorders s in place with a Fisher-Yates backward swap.
// Every permutation is equally likely given a uniform src.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

package rng

import "fmt"

// Shuffle permutes n elements in place with the Fisher-Yates algorithm,
// calling swap for each exchange. n of 0 or 1 is a no-op; negative n panics.
func (g *Generator[A, W]) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rng: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := g.uint64n(uint64(i)+1, false)
		swap(i, int(j))
	}
}

// ShuffleSlice permutes all of s in place.
func ShuffleSlice[T any](r Random, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// ShuffleRange permutes s[start:start+length] in place. A length of ToEnd
// shuffles up to the end of s.
func ShuffleRange[T any](r Random, s []T, start, length int) error {
	if length == ToEnd {
		length = len(s) - start
	}
	if start < 0 || start > len(s) || length < 0 || length > len(s)-start {
		return fmt.Errorf("%w: start %d, length %d in sequence of %d",
			ErrBufferBounds, start, length, len(s))
	}
	ShuffleSlice(r, s[start:start+length])
	return nil
}

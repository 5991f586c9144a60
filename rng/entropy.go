package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// TrueRandom returns an actually random number from the system's
// cryptographic randomness. This is not deterministic, obviously.
func TrueRandom() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("cannot read system randomness: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// TrueRandomWords returns n seed words from system randomness, truncated
// to the width of W.
func TrueRandomWords[W Word](n int) []W {
	b := make([]byte, 8*n)
	if _, err := crand.Read(b); err != nil {
		panic(fmt.Sprintf("cannot read system randomness: %v", err))
	}
	words := make([]W, n)
	for i := range words {
		words[i] = W(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return words
}

package rng

import (
	"encoding/binary"
	"fmt"
)

// ToEnd is the length sentinel meaning "up to the end of the destination".
const ToEnd = -1

// fillWords bounds the intermediate buffer used by Fill.
const fillWords = 256

// Fill writes length random bytes into dst starting at offset. Bytes come
// from 64-bit draws in little-endian order; a draw that is only partly
// needed at the end is discarded. A length of ToEnd fills the rest of dst.
func (g *Generator[A, W]) Fill(dst []byte, offset, length int) error {
	if length == ToEnd {
		length = len(dst) - offset
	}
	if offset < 0 || offset > len(dst) || length < 0 || length > len(dst)-offset {
		return fmt.Errorf("%w: offset %d, length %d in buffer of %d bytes",
			ErrBufferBounds, offset, length, len(dst))
	}

	var raw [fillWords * 8]byte
	out := dst[offset : offset+length]
	for len(out) > 0 {
		n := min(len(out), len(raw))
		for i := range (n + 7) / 8 {
			binary.LittleEndian.PutUint64(raw[8*i:], g.Next64())
		}
		copy(out, raw[:n])
		out = out[n:]
	}
	return nil
}

// Read fills p completely and never fails, so generators can be used as an
// io.Reader.
func (g *Generator[A, W]) Read(p []byte) (int, error) {
	if err := g.Fill(p, 0, len(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// GetBool returns a uniform boolean. One 64-bit draw is spread over 64
// consecutive calls.
func (g *Generator[A, W]) GetBool() bool {
	if g.cache.flipBits == 0 {
		g.cache.flip = g.Next64()
		g.cache.flipBits = 64
	}
	b := g.cache.flip&1 == 1
	g.cache.flip >>= 1
	g.cache.flipBits--
	return b
}

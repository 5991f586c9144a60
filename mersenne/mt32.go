package mersenne

import (
	"math"

	"wasi.team/prng/rng"
)

const (
	n32       = 624
	m32       = 397
	matrixA32 = 0x9908B0DF
	upper32   = 0x80000000
	lower32   = 0x7FFFFFFF

	initMul32 = 1812433253
	arrayMul1 = 1664525
	arrayMul2 = 1566083941
	arrayBase = 19650218
	temperB32 = 0x9D2C5680
	temperC32 = 0xEFC60000
)

// defaultKey32 is the init_by_array key of mt19937ar.out.
var defaultKey32 = [...]uint32{0x123, 0x234, 0x345, 0x456}

// Twister32 is the MT19937 state: 624 words and the read index.
type Twister32 struct {
	mt    [n32]uint32
	index int
}

// MT32 is a generator driven by MT19937.
type MT32 = rng.Generator[*Twister32, uint32]

var _ rng.Random = (*MT32)(nil)

// New32 returns an MT19937 generator seeded with key, or with the default
// key if none is given.
func New32(key ...uint32) *MT32 {
	t := &Twister32{}
	t.Seed(key)
	return rng.New[*Twister32, uint32](t)
}

// New32Scalar returns an MT19937 generator seeded with init_genrand(seed).
func New32Scalar(seed uint32) *MT32 {
	t := &Twister32{}
	t.SeedScalar(uint64(seed))
	return rng.New[*Twister32, uint32](t)
}

// NewRandomized32 returns an MT19937 generator seeded from system entropy.
func NewRandomized32() *MT32 {
	g := New32()
	g.Randomize()
	return g
}

// NativeMax is 2^32-1.
func (t *Twister32) NativeMax() uint64 { return math.MaxUint32 }

// SeedLength is the state size; a randomized seed fills the whole state.
func (t *Twister32) SeedLength() int { return n32 }

// SeedScalar fills the state from the low 32 bits of seed (init_genrand).
func (t *Twister32) SeedScalar(seed uint64) {
	t.init(uint32(seed))
}

func (t *Twister32) init(seed uint32) {
	t.mt[0] = seed
	for i := 1; i < n32; i++ {
		prev := t.mt[i-1]
		t.mt[i] = initMul32*(prev^(prev>>30)) + uint32(i)
	}
	t.index = n32
}

// Seed mixes key into the state (init_by_array). An empty key applies the
// default key.
func (t *Twister32) Seed(key []uint32) {
	if len(key) == 0 {
		key = defaultKey32[:]
	}
	t.init(arrayBase)
	mt := &t.mt

	i, j := 1, 0
	for k := max(n32, len(key)); k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * arrayMul1)) + key[j] + uint32(j)
		i++
		j++
		if i >= n32 {
			mt[0] = mt[n32-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := n32 - 1; k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * arrayMul2)) - uint32(i)
		i++
		if i >= n32 {
			mt[0] = mt[n32-1]
			i = 1
		}
	}
	// MSB is 1, assuring a non-zero initial state
	mt[0] = upper32
	t.index = n32
}

// reload regenerates all 624 words.
func (t *Twister32) reload() {
	mt := &t.mt
	var y uint32
	k := 0
	for ; k < n32-m32; k++ {
		y = (mt[k] & upper32) | (mt[k+1] & lower32)
		mt[k] = mt[k+m32] ^ (y >> 1) ^ (-(y & 1) & matrixA32)
	}
	for ; k < n32-1; k++ {
		y = (mt[k] & upper32) | (mt[k+1] & lower32)
		mt[k] = mt[k+(m32-n32)] ^ (y >> 1) ^ (-(y & 1) & matrixA32)
	}
	y = (mt[n32-1] & upper32) | (mt[0] & lower32)
	mt[n32-1] = mt[m32-1] ^ (y >> 1) ^ (-(y & 1) & matrixA32)
	t.index = 0
}

// Next returns the next tempered word.
func (t *Twister32) Next() uint64 {
	if t.index >= n32 {
		t.reload()
	}
	y := t.mt[t.index]
	t.index++

	y ^= y >> 11
	y ^= (y << 7) & temperB32
	y ^= (y << 15) & temperC32
	y ^= y >> 18
	return uint64(y)
}

// Discard skips n words without tempering them.
func (t *Twister32) Discard(n uint64) {
	for n > 0 {
		if t.index >= n32 {
			t.reload()
		}
		step := min(n, uint64(n32-t.index))
		t.index += int(step)
		n -= step
	}
}

// Clone returns a deep copy.
func (t *Twister32) Clone() *Twister32 {
	c := *t
	return &c
}

// Equal reports whether both states and read positions match.
func (t *Twister32) Equal(other *Twister32) bool {
	return other != nil && t.index == other.index && t.mt == other.mt
}

package mersenne

import (
	"math"

	"wasi.team/prng/rng"
)

const (
	n64       = 312
	m64       = 156
	matrixA64 = 0xB5026F5AA96619E9
	upper64   = 0xFFFFFFFF80000000 // most significant 33 bits
	lower64   = 0x7FFFFFFF         // least significant 31 bits

	initMul64   = 6364136223846793005
	arrayMul164 = 3935559000370003845
	arrayMul264 = 2862933555777941757
)

// defaultKey64 is the init_by_array64 key of mt19937-64.out.txt.
var defaultKey64 = [...]uint64{0x12345, 0x23456, 0x34567, 0x45678}

// Twister64 is the MT19937-64 state: 312 words and the read index.
type Twister64 struct {
	mt    [n64]uint64
	index int
}

// MT64 is a generator driven by MT19937-64.
type MT64 = rng.Generator[*Twister64, uint64]

var _ rng.Random = (*MT64)(nil)

// New64 returns an MT19937-64 generator seeded with key, or with the
// default key if none is given.
func New64(key ...uint64) *MT64 {
	t := &Twister64{}
	t.Seed(key)
	return rng.New[*Twister64, uint64](t)
}

// New64Scalar returns an MT19937-64 generator seeded with init_genrand64(seed).
func New64Scalar(seed uint64) *MT64 {
	t := &Twister64{}
	t.SeedScalar(seed)
	return rng.New[*Twister64, uint64](t)
}

// NewRandomized64 returns an MT19937-64 generator seeded from system entropy.
func NewRandomized64() *MT64 {
	g := New64()
	g.Randomize()
	return g
}

func (t *Twister64) NativeMax() uint64 { return math.MaxUint64 }

func (t *Twister64) SeedLength() int { return n64 }

// SeedScalar fills the state from seed (init_genrand64).
func (t *Twister64) SeedScalar(seed uint64) {
	t.mt[0] = seed
	for i := 1; i < n64; i++ {
		prev := t.mt[i-1]
		t.mt[i] = initMul64*(prev^(prev>>62)) + uint64(i)
	}
	t.index = n64
}

// Seed mixes key into the state (init_by_array64). An empty key applies
// the default key.
func (t *Twister64) Seed(key []uint64) {
	if len(key) == 0 {
		key = defaultKey64[:]
	}
	t.SeedScalar(arrayBase)
	mt := &t.mt

	i, j := 1, 0
	for k := max(n64, len(key)); k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 62)) * arrayMul164)) + key[j] + uint64(j)
		i++
		j++
		if i >= n64 {
			mt[0] = mt[n64-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := n64 - 1; k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 62)) * arrayMul264)) - uint64(i)
		i++
		if i >= n64 {
			mt[0] = mt[n64-1]
			i = 1
		}
	}
	mt[0] = 1 << 63
	t.index = n64
}

func (t *Twister64) reload() {
	mt := &t.mt
	var x uint64
	k := 0
	for ; k < n64-m64; k++ {
		x = (mt[k] & upper64) | (mt[k+1] & lower64)
		mt[k] = mt[k+m64] ^ (x >> 1) ^ (-(x & 1) & matrixA64)
	}
	for ; k < n64-1; k++ {
		x = (mt[k] & upper64) | (mt[k+1] & lower64)
		mt[k] = mt[k+(m64-n64)] ^ (x >> 1) ^ (-(x & 1) & matrixA64)
	}
	x = (mt[n64-1] & upper64) | (mt[0] & lower64)
	mt[n64-1] = mt[m64-1] ^ (x >> 1) ^ (-(x & 1) & matrixA64)
	t.index = 0
}

// Next returns the next tempered word.
func (t *Twister64) Next() uint64 {
	if t.index >= n64 {
		t.reload()
	}
	x := t.mt[t.index]
	t.index++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71D67FFFEDA60000
	x ^= (x << 37) & 0xFFF7EEE000000000
	x ^= x >> 43
	return x
}

// Discard skips n words without tempering them.
func (t *Twister64) Discard(n uint64) {
	for n > 0 {
		if t.index >= n64 {
			t.reload()
		}
		step := min(n, uint64(n64-t.index))
		t.index += int(step)
		n -= step
	}
}

func (t *Twister64) Clone() *Twister64 {
	c := *t
	return &c
}

func (t *Twister64) Equal(other *Twister64) bool {
	return other != nil && t.index == other.index && t.mt == other.mt
}

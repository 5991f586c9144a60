// Package mersenne implements the 32-bit and 64-bit Mersenne Twister
// (MT19937 and MT19937-64) as algorithms for the rng engine.
//
// Both reproduce the reference implementations by Matsumoto and Nishimura
// bit for bit:
//
//	http://www.math.sci.hiroshima-u.ac.jp/m-mat/MT/MT2002/emt19937ar.html
//	http://www.math.sci.hiroshima-u.ac.jp/m-mat/MT/emt64.html
//
// The default seeds are the key arrays used for the published test output,
// so an unseeded generator yields the reference sequence.
package mersenne

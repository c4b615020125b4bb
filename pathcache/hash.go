package pathcache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash; Table reduces it modulo capacity.
type HashFunc func(k Key) uint64

// Mixing constants of PrimeHash, applied to start, end and the cost flag.
const (
	primeStart    = 102523
	primeEnd      = 100907
	primeCostMode = 104659
)

// PrimeHash is the linear three-prime hash P0*start + P1*end + P2*flag.
// It is cheap and reproducible but clusters for structured keys.
func PrimeHash(k Key) uint64 {
	h := int64(primeStart)*int64(k.Start) + int64(primeEnd)*int64(k.End)
	if k.CostMode {
		h += primeCostMode
	}

	return uint64(h)
}

// XXHash hashes the little-endian encoding of the key with xxhash.
func XXHash(k Key) uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(k.Start)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(k.End)))
	if k.CostMode {
		buf[16] = 1
	}

	return xxhash.Sum64(buf[:])
}

// HasherByName resolves "prime" and "xxhash".
func HasherByName(name string) (HashFunc, bool) {
	switch name {
	case "", "prime":
		return PrimeHash, true
	case "xxhash":
		return XXHash, true
	default:
		return nil, false
	}
}

// IsPrime reports whether n is prime. Quadratic probing visits at least
// n/2 distinct slots only for prime n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime ≥ n.
func NextPrime(n int) int {
	if n < 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}

	return n
}

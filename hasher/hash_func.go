package hasher

import (
	"github.com/OneOfOne/xxhash"

	I "github.com/xaionaro-go/primemap/interfaces"
)

// SumOfCodes sums the code points of the key. Anagrams collide, which
// makes it handy for exercising collision paths.
func SumOfCodes(key I.Key) uint64 {
	hash := uint64(0)
	for _, c := range key {
		hash += uint64(c)
	}
	return hash
}

// WeightedSumOfCodes sums the code points of the key, each multiplied by
// its 1-based position.
func WeightedSumOfCodes(key I.Key) uint64 {
	hash := uint64(0)
	idx := uint64(0)
	for _, c := range key {
		idx++
		hash += idx * uint64(c)
	}
	return hash
}

func XXHash(key I.Key) uint64 {
	return xxhash.ChecksumString64(key)
}

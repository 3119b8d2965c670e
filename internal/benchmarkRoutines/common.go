package benchmarkRoutines

import (
	"math/rand"
	"strconv"

	I "github.com/xaionaro-go/primemap/interfaces"
)

type mapFactoryFunc func(capacity int, hashFunc I.HashFunc) I.Map
type referenceFactoryFunc func() I.Basic
type basicFactoryFunc func(capacity int) I.Basic

const keysSeed = 4735311918715544114

func generateKeys(keyAmount uint64) []I.Key {
	return generateKeysWithPrefix(keyAmount, "k")
}

// generateKeysWithPrefix returns keyAmount distinct pseudo-random keys. The
// sequence is the same on every call.
func generateKeysWithPrefix(keyAmount uint64, prefix string) []I.Key {
	rng := rand.New(rand.NewSource(keysSeed))
	resultMap := make(map[I.Key]bool, keyAmount)
	result := make([]I.Key, 0, keyAmount)
	for uint64(len(result)) < keyAmount {
		newKey := prefix + strconv.FormatUint(uint64(rng.Uint32()), 10)
		if resultMap[newKey] {
			continue
		}
		resultMap[newKey] = true
		result = append(result, newKey)
	}
	return result
}

func strconvItoa(i int) I.Key {
	return strconv.Itoa(i)
}

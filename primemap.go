// Package primemap provides hash maps over string keys which keep a prime
// amount of buckets: see subpackages "openaddressing" (quadratic probing with
// tombstones) and "chaining" (separate chaining).
package primemap

import (
	"github.com/xaionaro-go/primemap/chaining"
	I "github.com/xaionaro-go/primemap/interfaces"
	"github.com/xaionaro-go/primemap/openaddressing"
)

// NewOpenAddressing returns an empty open addressing map of capacity
// NextPrime(capacity). A nil hashFunc means hasher.Default.
func NewOpenAddressing(capacity int, hashFunc I.HashFunc) I.Map {
	return openaddressing.New(capacity, hashFunc)
}

// NewChaining returns an empty separate chaining map of capacity
// NextPrime(capacity). A nil hashFunc means hasher.Default.
func NewChaining(capacity int, hashFunc I.HashFunc) I.Map {
	return chaining.NewWithArgs(capacity, hashFunc)
}

// Package hasher contains the hash functions a map can be constructed with.
package hasher

import (
	I "github.com/xaionaro-go/primemap/interfaces"
)

type HashFunc = I.HashFunc

// Default is used by the constructors when no hash function is passed.
var Default HashFunc = XXHash

// OrDefault returns fn, or Default if fn is nil.
func OrDefault(fn HashFunc) HashFunc {
	if fn == nil {
		return Default
	}
	return fn
}

package interfaces

type Key = string

// HashFunc maps a key to a non-negative integer. The map reduces it
// modulo its capacity.
type HashFunc func(key Key) uint64

type KeyValue struct {
	Key   Key
	Value interface{}
}

// Iterator walks live entries in bucket order. It's single-pass:
// create a new one to walk again.
type Iterator interface {
	Next() bool
	Key() Key
	Value() interface{}
}

// Basic is the subset of the contract any key-value storage can satisfy
// (it's also implemented by the reference implementations used in tests).
type Basic interface {
	Put(key Key, value interface{})
	Get(key Key) (value interface{}, err error)
	ContainsKey(key Key) bool
	Remove(key Key)
	Len() int
	ToSTDMap() map[Key]interface{}
}

type Map interface {
	Basic

	ResizeTable(newCapacity int)
	TableLoad() float64
	EmptyBuckets() int
	Capacity() int
	KeysAndValues() []KeyValue
	Keys() []Key
	Clear()
	Iter() Iterator
	FromSTDMap(map[Key]interface{})
	CheckConsistency() error
	String() string
}

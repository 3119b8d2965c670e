package chaining

import (
	e "github.com/xaionaro-go/primemap/errors"
	I "github.com/xaionaro-go/primemap/interfaces"
)

// Iterator walks the entries bucket by bucket, each chain from its head.
// Resizing or clearing the map while iterating makes Next panic.
type Iterator struct {
	m          *Map
	generation uint64
	bucketIdx  int
	current    *node
	started    bool
}

func (m *Map) Iter() I.Iterator {
	return &Iterator{m: m, generation: m.generation}
}

// Next moves to the next entry and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.generation != it.m.generation {
		panic(e.ModifiedDuringIteration)
	}

	if it.current != nil && it.current.next != nil {
		it.current = it.current.next
		return true
	}
	if it.started {
		it.bucketIdx++
	}
	it.started = true

	for ; it.bucketIdx < len(it.m.buckets); it.bucketIdx++ {
		if head := it.m.buckets[it.bucketIdx].head; head != nil {
			it.current = head
			return true
		}
	}
	it.current = nil
	return false
}

func (it *Iterator) Key() I.Key {
	return it.current.key
}

func (it *Iterator) Value() interface{} {
	return it.current.value
}

package openaddressing

import (
	e "github.com/xaionaro-go/primemap/errors"
	I "github.com/xaionaro-go/primemap/interfaces"
)

// Iterator walks live slots in ascending index order. It only reads the
// map; resizing or clearing the map while iterating makes Next panic.
type Iterator struct {
	m          *Map
	generation uint64
	nextIdx    int
	current    *slot
}

// Iter returns an iterator positioned before the first live entry.
func (m *Map) Iter() I.Iterator {
	return &Iterator{m: m, generation: m.generation}
}

// Next moves to the next live entry and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.generation != it.m.generation {
		panic(e.ModifiedDuringIteration)
	}
	for it.nextIdx < len(it.m.slots) {
		slot := it.m.slots.get(uint64(it.nextIdx))
		it.nextIdx++
		if slot.IsLive() {
			it.current = slot
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

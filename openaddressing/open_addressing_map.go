//go:generate benchmarkCodeGen

// Package openaddressing implements a hash map resolving collisions by
// quadratic probing over a prime-sized bucket array. Removed entries are
// tombstoned and stay in place until the next resize.
package openaddressing

import (
	"bytes"
	"fmt"
	"log"

	"github.com/pkg/errors"

	e "github.com/xaionaro-go/primemap/errors"
	"github.com/xaionaro-go/primemap/hasher"
	I "github.com/xaionaro-go/primemap/interfaces"
	"github.com/xaionaro-go/primemap/primes"
)

const (
	DefaultCapacity = 11
	growAtLoad      = 0.5
)

var _ I.Map = &Map{}

type Map struct {
	slots      slots
	hashFunc   I.HashFunc
	size       int
	tombstones int
	generation uint64
}

func fixCapacity(capacity int) int {
	if capacity < 1 {
		log.Printf("Invalid capacity: %v. Setting to %v\n", capacity, DefaultCapacity)
		capacity = DefaultCapacity
	}
	return primes.NextPrime(capacity)
}

// New returns an empty map of capacity NextPrime(capacity). If hashFunc is
// nil then hasher.Default is used.
func New(capacity int, hashFunc I.HashFunc) *Map {
	return &Map{
		slots:    newSlots(fixCapacity(capacity)),
		hashFunc: hasher.OrDefault(hashFunc),
	}
}

func (m *Map) baseIdx(key I.Key) uint64 {
	return m.hashFunc(key) % uint64(len(m.slots))
}

// find returns the slot holding key alive, or nil.
func (m *Map) find(key I.Key) *slot {
	base := m.baseIdx(key)
	for i := uint64(0); i < uint64(len(m.slots)); i++ {
		slot := m.slots.get(m.slots.probeIdx(base, i))
		if slot.IsEmpty() {
			return nil
		}
		if slot.Holds(key) {
			return slot
		}
	}
	return nil
}

// Put sets the value for key. If the load factor already reached 0.5 the
// table is doubled (to the next prime) before inserting.
func (m *Map) Put(key I.Key, value interface{}) {
	if m.TableLoad() >= growAtLoad {
		m.ResizeTable(m.Capacity() * 2)
	}

	if m.put(key, value) {
		return
	}

	// Tombstones are never reused, so they may block every probe position.
	// A rehash at the same capacity clears them.
	if m.tombstones > 0 {
		m.ResizeTable(m.Capacity())
		if m.put(key, value) {
			return
		}
	}

	panic(errors.Wrapf(e.ProbesExhausted, "key %q: capacity %v, size %v, tombstones %v",
		key, m.Capacity(), m.size, m.tombstones))
}

func (m *Map) put(key I.Key, value interface{}) bool {
	base := m.baseIdx(key)
	for i := uint64(0); i < uint64(len(m.slots)); i++ {
		slot := m.slots.get(m.slots.probeIdx(base, i))
		if slot.IsEmpty() {
			slot.state = slotOccupied
			slot.key = key
			slot.value = value
			m.size++
			return true
		}
		if slot.Holds(key) {
			slot.value = value
			return true
		}
	}
	return false
}

func (m *Map) Get(key I.Key) (interface{}, error) {
	slot := m.find(key)
	if slot == nil {
		return nil, e.NotFound
	}
	return slot.value, nil
}

func (m *Map) ContainsKey(key I.Key) bool {
	return m.find(key) != nil
}

// Remove tombstones the entry of key. It does nothing if there's no such key.
func (m *Map) Remove(key I.Key) {
	slot := m.find(key)
	if slot == nil {
		return
	}
	slot.state = slotTombstoned
	m.size--
	m.tombstones++
}

// ResizeTable rehashes every live entry into a new array of capacity
// NextPrime(newCapacity). It does nothing if newCapacity is less than the
// amount of entries.
//
// Entries are re-inserted via Put, so if they still fill at least a half of
// the new array, a nested resize happens in the middle of the rehash.
func (m *Map) ResizeTable(newCapacity int) {
	if newCapacity < m.size {
		return
	}

	oldSlots := m.slots
	m.slots = newSlots(primes.NextPrime(newCapacity))
	m.size = 0
	m.tombstones = 0
	m.generation++

	for idx := range oldSlots {
		oldSlot := &oldSlots[idx]
		if !oldSlot.IsLive() {
			continue
		}
		m.Put(oldSlot.key, oldSlot.value)
	}
}

func (m *Map) TableLoad() float64 {
	return float64(m.size) / float64(len(m.slots))
}

// EmptyBuckets counts slots which never held an entry since the last
// resize or Clear. Tombstones are not empty.
func (m *Map) EmptyBuckets() int {
	count := 0
	for idx := range m.slots {
		if m.slots[idx].IsEmpty() {
			count++
		}
	}
	return count
}

func (m *Map) Len() int {
	return m.size
}

func (m *Map) Capacity() int {
	return len(m.slots)
}

// KeysAndValues returns a snapshot of live entries in bucket order.
func (m *Map) KeysAndValues() []I.KeyValue {
	r := make([]I.KeyValue, 0, m.size)
	for idx := range m.slots {
		slot := &m.slots[idx]
		if !slot.IsLive() {
			continue
		}
		r = append(r, I.KeyValue{Key: slot.key, Value: slot.value})
	}
	return r
}

// Keys returns live keys in bucket order.
func (m *Map) Keys() []I.Key {
	r := make([]I.Key, 0, m.size)
	for idx := range m.slots {
		slot := &m.slots[idx]
		if !slot.IsLive() {
			continue
		}
		r = append(r, slot.key)
	}
	return r
}

// Clear empties every slot. The capacity is kept.
func (m *Map) Clear() {
	for idx := range m.slots {
		m.slots[idx] = slot{}
	}
	m.size = 0
	m.tombstones = 0
	m.generation++
}

// ToSTDMap converts to a standart map `map[Key]interface{}`.
func (m *Map) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, m.size)
	for idx := range m.slots {
		slot := &m.slots[idx]
		if !slot.IsLive() {
			continue
		}
		r[slot.key] = slot.value
	}
	return r
}

// FromSTDMap puts every entry of stdMap. The table is grown once up front
// if the entries wouldn't fit under the load threshold.
func (m *Map) FromSTDMap(stdMap map[I.Key]interface{}) {
	expectedSize := m.size + len(stdMap)
	if float64(expectedSize)/float64(m.Capacity()) >= growAtLoad {
		m.ResizeTable(int(float64(expectedSize)/growAtLoad) + 1)
	}

	for k, v := range stdMap {
		m.Put(k, v)
	}
}

func (m *Map) CheckConsistency() error {
	live, tombstones := 0, 0
	seen := map[I.Key]bool{}
	for idx := range m.slots {
		slot := &m.slots[idx]
		switch slot.state {
		case slotEmpty:
			continue
		case slotTombstoned:
			tombstones++
			continue
		}

		live++
		if seen[slot.key] {
			return errors.Wrapf(e.Inconsistent, "key %q is live twice", slot.key)
		}
		seen[slot.key] = true

		found := m.find(slot.key)
		if found != slot {
			return errors.Wrapf(e.Inconsistent, "key %q at %v is unreachable by probing from %v",
				slot.key, idx, m.baseIdx(slot.key))
		}
	}

	if live != m.size {
		return errors.Wrapf(e.Inconsistent, "live slots != m.Len(): %v %v", live, m.size)
	}
	if tombstones != m.tombstones {
		return errors.Wrapf(e.Inconsistent, "tombstoned slots != counter: %v %v", tombstones, m.tombstones)
	}
	if !primes.IsPrime(m.Capacity()) {
		return errors.Wrapf(e.Inconsistent, "capacity %v is not prime", m.Capacity())
	}
	return nil
}

// String dumps the bucket array, one "index: slot" line per slot.
func (m *Map) String() string {
	var buf bytes.Buffer
	for idx := range m.slots {
		fmt.Fprintf(&buf, "%v: %v\n", idx, m.slots[idx].String())
	}
	return buf.String()
}

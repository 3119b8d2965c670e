//go:generate benchmarkCodeGen

// Package chaining implements a hash map resolving collisions by keeping
// a linked chain of entries per bucket.
package chaining

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
	growAtLoad      = 1.0
)

var _ I.Map = &Map{}

type Map struct {
	buckets    []chain
	hashFunc   I.HashFunc
	size       int
	generation uint64
}

func fixCapacity(capacity int) int {
	if capacity < 1 {
		log.Printf("Invalid capacity: %v. Setting to %v\n", capacity, DefaultCapacity)
		capacity = DefaultCapacity
	}
	return primes.NextPrime(capacity)
}

func New() *Map {
	return NewWithArgs(DefaultCapacity, nil)
}

// NewWithArgs returns an empty map of capacity NextPrime(capacity). If
// hashFunc is nil then hasher.Default is used.
func NewWithArgs(capacity int, hashFunc I.HashFunc) *Map {
	return &Map{
		buckets:  make([]chain, fixCapacity(capacity)),
		hashFunc: hasher.OrDefault(hashFunc),
	}
}

func (m *Map) bucket(key I.Key) *chain {
	return &m.buckets[m.hashFunc(key)%uint64(len(m.buckets))]
}

// Put sets the value for key. If the load factor already reached 1.0 the
// table is doubled (to the next prime) before inserting.
func (m *Map) Put(key I.Key, value interface{}) {
	if m.TableLoad() >= growAtLoad {
		m.ResizeTable(m.Capacity() * 2)
	}

	bucket := m.bucket(key)
	if n := bucket.find(key); n != nil {
		n.value = value
		return
	}
	bucket.insert(key, value)
	m.size++
}

func (m *Map) Get(key I.Key) (interface{}, error) {
	n := m.bucket(key).find(key)
	if n == nil {
		return nil, e.NotFound
	}
	return n.value, nil
}

func (m *Map) ContainsKey(key I.Key) bool {
	return m.bucket(key).find(key) != nil
}

// Remove unlinks the entry of key. It does nothing if there's no such key.
func (m *Map) Remove(key I.Key) {
	if m.bucket(key).remove(key) {
		m.size--
	}
}

// ResizeTable rehashes every entry into NextPrime(newCapacity) new chains,
// walking the old buckets in index order and each chain from its head.
// It does nothing if newCapacity < 1.
func (m *Map) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		return
	}

	oldBuckets := m.buckets
	m.buckets = make([]chain, primes.NextPrime(newCapacity))
	m.size = 0
	m.generation++

	for idx := range oldBuckets {
		for n := oldBuckets[idx].head; n != nil; n = n.next {
			m.Put(n.key, n.value)
		}
	}
}

func (m *Map) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// EmptyBuckets counts buckets with an empty chain.
func (m *Map) EmptyBuckets() int {
	count := 0
	for idx := range m.buckets {
		if m.buckets[idx].length == 0 {
			count++
		}
	}
	return count
}

func (m *Map) Len() int {
	return m.size
}

func (m *Map) Capacity() int {
	return len(m.buckets)
}

// KeysAndValues returns a snapshot of the entries in bucket order.
func (m *Map) KeysAndValues() []I.KeyValue {
	r := make([]I.KeyValue, 0, m.size)
	m.each(func(n *node) {
		r = append(r, I.KeyValue{Key: n.key, Value: n.value})
	})
	return r
}

func (m *Map) Keys() []I.Key {
	r := make([]I.Key, 0, m.size)
	m.each(func(n *node) {
		r = append(r, n.key)
	})
	return r
}

func (m *Map) each(fn func(n *node)) {
	for idx := range m.buckets {
		for n := m.buckets[idx].head; n != nil; n = n.next {
			fn(n)
		}
	}
}

// Clear drops every chain. The capacity is kept.
func (m *Map) Clear() {
	for idx := range m.buckets {
		m.buckets[idx] = chain{}
	}
	m.size = 0
	m.generation++
}

// ToSTDMap converts to a standart map `map[Key]interface{}`.
func (m *Map) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, m.size)
	m.each(func(n *node) {
		r[n.key] = n.value
	})
	return r
}

// FromSTDMap puts every entry of stdMap, growing the table once up front
// if they wouldn't fit under the load threshold.
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
	count := 0
	seen := map[I.Key]bool{}
	for idx := range m.buckets {
		length := 0
		for n := m.buckets[idx].head; n != nil; n = n.next {
			length++
			if seen[n.key] {
				return errors.Wrapf(e.Inconsistent, "key %q is stored twice", n.key)
			}
			seen[n.key] = true
			if m.bucket(n.key) != &m.buckets[idx] {
				return errors.Wrapf(e.Inconsistent, "key %q is in bucket %v, expected %v",
					n.key, idx, m.hashFunc(n.key)%uint64(len(m.buckets)))
			}
		}
		if length != m.buckets[idx].length {
			return errors.Wrapf(e.Inconsistent, "bucket %v: chain length %v != counter %v",
				idx, length, m.buckets[idx].length)
		}
		count += length
	}

	if count != m.size {
		return errors.Wrapf(e.Inconsistent, "nodes != m.Len(): %v %v", count, m.size)
	}
	if !primes.IsPrime(m.Capacity()) {
		return errors.Wrapf(e.Inconsistent, "capacity %v is not prime", m.Capacity())
	}
	return nil
}

// String dumps the bucket array, one "index: chain" line per bucket.
func (m *Map) String() string {
	var buf bytes.Buffer
	for idx := range m.buckets {
		fmt.Fprintf(&buf, "%v: %v\n", idx, m.buckets[idx].String())
	}
	return buf.String()
}

package benchmarkRoutines

import (
	"math/rand"
	"testing"

	e "github.com/xaionaro-go/primemap/errors"
	I "github.com/xaionaro-go/primemap/interfaces"
	"github.com/xaionaro-go/primemap/primes"
)

func expect(t *testing.T, m I.Basic, key I.Key, expectedValue int) {
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v) for key %v`, value, expectedValue, key)
	}
}

func expectNotFound(t *testing.T, m I.Basic, key I.Key) {
	value, err := m.Get(key)
	if err != e.NotFound {
		t.Errorf(`An expected "NotFound" error for key %v, but got: %v (value %v)`, key, err, value)
	}
	if m.ContainsKey(key) {
		t.Errorf("ContainsKey(%v) is true for a missing key", key)
	}
}

func checkConsistency(t *testing.T, m I.Map) {
	if err := m.CheckConsistency(); err != nil {
		t.Fatalf("Got an unexpected error: %v", err)
	}
	if !primes.IsPrime(m.Capacity()) {
		t.Fatalf("capacity %v is not prime", m.Capacity())
	}
}

// DoTest runs the common scenario every map implementation has to pass.
// maxLoad is the load factor at which the implementation grows.
func DoTest(t *testing.T, factoryFunc mapFactoryFunc, hashFunc I.HashFunc, maxLoad float64) {
	m := factoryFunc(1024, hashFunc)

	if m.Len() != 0 {
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}
	if m.EmptyBuckets() != m.Capacity() {
		t.Errorf("new map: EmptyBuckets() %v != Capacity() %v", m.EmptyBuckets(), m.Capacity())
	}

	m.Put("1048576", 1)
	m.Put("a string", 2)

	expect(t, m, "1048576", 1)
	expect(t, m, "a string", 2)
	expectNotFound(t, m, "3")

	if m.Len() != 2 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}

	m.Remove("1048576")
	expectNotFound(t, m, "1048576")
	if m.Len() != 1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	m.Remove("1048576")
	if m.Len() != 1 {
		t.Errorf("second Remove changed m.Len(): %v", m.Len())
	}

	keys := generateKeys(1 << 14)
	for i, key := range keys {
		m.Put(key, i)
		if float64(m.Len()-1)/float64(m.Capacity()) >= maxLoad {
			t.Fatalf("load before the insertion of %v was %v/%v", key, m.Len()-1, m.Capacity())
		}
	}
	m.Remove(keys[0])

	checkConsistency(t, m)
	for i, key := range keys[1:] {
		expect(t, m, key, i+1)
	}
	expectNotFound(t, m, keys[0])
	if m.Len() != len(keys) {
		t.Errorf("m.Len() %v != %v", m.Len(), len(keys))
	}

	for i, key := range keys {
		m.Put(key, -i)
	}
	if m.Len() != len(keys)+1 {
		t.Errorf("updating values changed m.Len(): %v", m.Len())
	}
	for i, key := range keys {
		expect(t, m, key, -i)
	}

	for _, key := range keys[1:] {
		m.Remove(key)
	}
	checkConsistency(t, m)
	if m.Len() != 2 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}
	expect(t, m, "a string", 2)
	expect(t, m, keys[0], 0)

	m.Clear()
	checkConsistency(t, m)
	if m.Len() != 0 || m.EmptyBuckets() != m.Capacity() {
		t.Errorf("Clear(): Len() %v, EmptyBuckets() %v, Capacity() %v", m.Len(), m.EmptyBuckets(), m.Capacity())
	}
	expectNotFound(t, m, "a string")
}

// DoTestResize checks ResizeTable keeps every entry and picks a prime
// capacity not less than requested.
func DoTestResize(t *testing.T, factoryFunc mapFactoryFunc, hashFunc I.HashFunc) {
	m := factoryFunc(75, hashFunc)
	var keys []I.Key
	for i := 1; i < 1000; i += 13 {
		key := I.Key(strconvItoa(i))
		keys = append(keys, key)
		m.Put(key, i*42)
	}

	for capacity := 111; capacity < 1000; capacity += 117 {
		m.ResizeTable(capacity)
		if m.Capacity() < capacity || !primes.IsPrime(m.Capacity()) {
			t.Errorf("ResizeTable(%v): capacity %v", capacity, m.Capacity())
		}

		m.Put("some key", "some value")
		if !m.ContainsKey("some key") {
			t.Errorf("capacity %v: \"some key\" is missing", capacity)
		}
		m.Remove("some key")

		for i, key := range keys {
			expect(t, m, key, (1+i*13)*42)
			expectNotFound(t, m, strconvItoa(1+i*13+1))
		}
		if m.Len() != len(keys) {
			t.Errorf("capacity %v: Len() %v != %v", capacity, m.Len(), len(keys))
		}
		checkConsistency(t, m)
	}
}

// DoTestAgainstReference applies the same random operations to m and to a
// reference implementation and compares the outcomes.
func DoTestAgainstReference(t *testing.T, factoryFunc mapFactoryFunc, hashFunc I.HashFunc, referenceFactory referenceFactoryFunc, opAmount int) {
	rng := rand.New(rand.NewSource(keysSeed))
	keys := generateKeysWithPrefix(uint64(opAmount/8+1), "ref")

	m := factoryFunc(3, hashFunc)
	ref := referenceFactory()

	for op := 0; op < opAmount; op++ {
		key := keys[rng.Intn(len(keys))]
		switch rng.Intn(4) {
		case 0, 1:
			m.Put(key, op)
			ref.Put(key, op)
		case 2:
			m.Remove(key)
			ref.Remove(key)
		case 3:
			value, err := m.Get(key)
			refValue, refErr := ref.Get(key)
			if err != refErr || value != refValue {
				t.Fatalf("op %v: Get(%v) == %v, %v; reference: %v, %v", op, key, value, err, refValue, refErr)
			}
		}
		if m.ContainsKey(key) != ref.ContainsKey(key) {
			t.Fatalf("op %v: ContainsKey(%v) == %v, reference disagrees", op, key, m.ContainsKey(key))
		}
		if m.Len() != ref.Len() {
			t.Fatalf("op %v: Len() == %v, reference: %v", op, m.Len(), ref.Len())
		}
	}

	checkConsistency(t, m)
	stdMap := m.ToSTDMap()
	refMap := ref.ToSTDMap()
	if len(stdMap) != len(refMap) {
		t.Fatalf("ToSTDMap(): %v entries, reference: %v", len(stdMap), len(refMap))
	}
	for k, v := range refMap {
		if stdMap[k] != v {
			t.Errorf("ToSTDMap()[%v] == %v, reference: %v", k, stdMap[k], v)
		}
	}

	iterated := 0
	for it := m.Iter(); it.Next(); {
		iterated++
		if refMap[it.Key()] != it.Value() {
			t.Errorf("iterator: %v => %v, reference: %v", it.Key(), it.Value(), refMap[it.Key()])
		}
	}
	if iterated != len(refMap) {
		t.Errorf("iterator visited %v entries, reference has %v", iterated, len(refMap))
	}
}

// DoTestHashCollisions checks hashFunc is deterministic and spreads
// keyAmount keys over at least an eighth as many buckets.
func DoTestHashCollisions(t *testing.T, hashFunc I.HashFunc, capacity uint64, keyAmount uint64) {
	keys := generateKeys(keyAmount)

	buckets := map[uint64]bool{}
	collisions := 0
	for _, key := range keys {
		hash := hashFunc(key)
		if hash != hashFunc(key) {
			t.Fatalf("hash of %v is not deterministic", key)
		}
		idx := hash % capacity
		if buckets[idx] {
			collisions++
		}
		buckets[idx] = true
	}

	t.Logf("Total collisions on random keys: %v/%v, capacity %v (%.1f%%)",
		collisions, keyAmount, capacity, float32(collisions)*100/float32(keyAmount))

	if uint64(len(buckets)) < keyAmount/8 {
		t.Errorf("%v keys landed in only %v buckets of %v", keyAmount, len(buckets), capacity)
	}
}

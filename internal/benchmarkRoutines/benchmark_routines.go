package benchmarkRoutines

import (
	"testing"

	I "github.com/xaionaro-go/primemap/interfaces"
)

func DoBenchmarkHash(b *testing.B, hashFunc I.HashFunc) {
	b.StopTimer()
	keys := generateKeys(1024)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		hashFunc(keys[i&1023])
	}
	b.StopTimer()
}

func DoBenchmarkOfPut(b *testing.B, factoryFunc basicFactoryFunc, capacity int, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(capacity)

	keys := generateKeys(keyAmount)

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[currentCount], i)
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(capacity)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc basicFactoryFunc, capacity int, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(capacity)

	keys := generateKeys(keyAmount)
	for i := uint64(0); i < keyAmount; i++ {
		m.Put(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc basicFactoryFunc, capacity int, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(capacity)

	keys := generateKeys(keyAmount)
	for i := uint64(0); i < keyAmount; i++ {
		m.Put(keys[i], i)
	}
	missKeys := generateKeysWithPrefix(keyAmount, "miss")

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(missKeys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRemove(b *testing.B, factoryFunc basicFactoryFunc, capacity int, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(capacity)
	keys := generateKeys(keyAmount)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			m = factoryFunc(capacity)
			for j := uint64(0); j < keyAmount; j++ {
				m.Put(keys[j], j)
			}
			b.StartTimer()
		}

		m.Remove(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

//go:generate benchmarkCodeGen

package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/primemap/errors"
	I "github.com/xaionaro-go/primemap/interfaces"
)

var _ I.Basic = &hashmapWrapper{}

func New() I.Basic {
	return NewWithArgs(hashmap.DefaultSize)
}
func NewWithArgs(capacity int) I.Basic {
	if capacity < hashmap.DefaultSize {
		capacity = hashmap.DefaultSize
	}
	return &hashmapWrapper{
		HashMap: hashmap.New(uintptr(capacity)),
		keys:    map[I.Key]struct{}{},
	}
}

// hashmapWrapper adapts the lock-free github.com/cornelk/hashmap. It keeps
// its own key set since the wrapped map has no consistent snapshot.
type hashmapWrapper struct {
	*hashmap.HashMap
	keys map[I.Key]struct{}
}

func (m *hashmapWrapper) Put(key I.Key, value interface{}) {
	m.HashMap.Set(key, value)
	m.keys[key] = struct{}{}
}
func (m *hashmapWrapper) Get(key I.Key) (interface{}, error) {
	var err error
	v, ok := m.HashMap.Get(key)
	if !ok {
		err = errors.NotFound
	}
	return v, err
}
func (m *hashmapWrapper) ContainsKey(key I.Key) bool {
	_, ok := m.HashMap.Get(key)
	return ok
}
func (m *hashmapWrapper) Remove(key I.Key) {
	m.HashMap.Del(key)
	delete(m.keys, key)
}
func (m *hashmapWrapper) Len() int {
	return m.HashMap.Len()
}
func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, len(m.keys))
	for key := range m.keys {
		if v, ok := m.HashMap.Get(key); ok {
			r[key] = v
		}
	}
	return r
}

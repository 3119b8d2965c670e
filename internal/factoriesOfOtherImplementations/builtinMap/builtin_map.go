//go:generate benchmarkCodeGen

package builtinMap

import (
	"github.com/xaionaro-go/primemap/errors"
	I "github.com/xaionaro-go/primemap/interfaces"
)

var _ I.Basic = builtinMap{}

func New() I.Basic {
	return builtinMap{}
}

func NewWithArgs(capacity int) I.Basic {
	return make(builtinMap, capacity)
}

type builtinMap map[I.Key]interface{}

func (m builtinMap) Put(key I.Key, value interface{}) {
	m[key] = value
}
func (m builtinMap) Get(key I.Key) (interface{}, error) {
	value, ok := m[key]
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}
func (m builtinMap) ContainsKey(key I.Key) bool {
	_, ok := m[key]
	return ok
}
func (m builtinMap) Remove(key I.Key) {
	delete(m, key)
}
func (m builtinMap) Len() int {
	return len(m)
}
func (m builtinMap) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

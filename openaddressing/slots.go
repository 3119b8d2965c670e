package openaddressing

import (
	"fmt"

	I "github.com/xaionaro-go/primemap/interfaces"
)

type slotState uint8

const (
	slotEmpty = slotState(iota) // 0
	slotOccupied
	slotTombstoned
)

type slot struct {
	state slotState
	key   I.Key
	value interface{}
}

func (s *slot) IsEmpty() bool {
	return s.state == slotEmpty
}

// IsLive is true for an occupied slot that wasn't removed.
func (s *slot) IsLive() bool {
	return s.state == slotOccupied
}

func (s *slot) Holds(key I.Key) bool {
	return s.state == slotOccupied && s.key == key
}

func (s *slot) String() string {
	switch s.state {
	case slotEmpty:
		return "-"
	case slotOccupied:
		return fmt.Sprintf("%v => %v", s.key, s.value)
	case slotTombstoned:
		return fmt.Sprintf("%v => %v (removed)", s.key, s.value)
	}
	panic(fmt.Sprintf("unknown slot state: %v", s.state))
}

type slots []slot

func newSlots(capacity int) slots {
	return make(slots, capacity)
}

func (ss slots) get(idx uint64) *slot {
	return &ss[idx]
}

// probeIdx returns the i-th index of the quadratic probe sequence
// starting at base.
func (ss slots) probeIdx(base, i uint64) uint64 {
	return (base + i*i) % uint64(len(ss))
}

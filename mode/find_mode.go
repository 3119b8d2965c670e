// Package mode finds the most frequent values of a sequence.
package mode

import (
	"github.com/xaionaro-go/primemap/chaining"
)

// FindMode returns every value occurring the maximal number of times, and
// that number. Modes come in the bucket order of the counting map, not in
// the input order.
func FindMode(values []string) (modes []string, maxCount int) {
	counts := chaining.New()
	for _, value := range values {
		count := 1
		if prev, err := counts.Get(value); err == nil {
			count = prev.(int) + 1
		}
		counts.Put(value, count)
		if count > maxCount {
			maxCount = count
		}
	}

	for it := counts.Iter(); it.Next(); {
		if it.Value().(int) == maxCount {
			modes = append(modes, it.Key())
		}
	}
	return
}

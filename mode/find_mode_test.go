package mode

import (
	"sort"
	"testing"

	"github.com/xaionaro-go/primemap/chaining"
)

func checkModes(t *testing.T, values []string, expectedModes []string, expectedCount int) {
	modes, count := FindMode(values)
	if count != expectedCount {
		t.Errorf("FindMode(%q): count %v, expected %v", values, count, expectedCount)
	}
	sorted := append([]string{}, modes...)
	sort.Strings(sorted)
	sort.Strings(expectedModes)
	if len(sorted) != len(expectedModes) {
		t.Errorf("FindMode(%q): modes %q, expected %q", values, modes, expectedModes)
		return
	}
	for i := range sorted {
		if sorted[i] != expectedModes[i] {
			t.Errorf("FindMode(%q): modes %q, expected %q", values, modes, expectedModes)
			return
		}
	}
}

func TestFindMode(t *testing.T) {
	checkModes(t, []string{"apple", "apple", "grape", "melon", "peach"}, []string{"apple"}, 2)
	checkModes(t, []string{"Arch", "Manjaro", "Manjaro", "Mint", "Mint", "Mint", "Ubuntu", "Ubuntu", "Ubuntu"}, []string{"Mint", "Ubuntu"}, 3)
	checkModes(t, []string{"one", "two", "three", "four", "five"}, []string{"one", "two", "three", "four", "five"}, 1)
	checkModes(t, []string{"2", "4", "2", "6", "8", "4", "1", "3", "4", "5", "7", "3", "3", "2"}, []string{"2", "3", "4"}, 3)
}

func TestFindModeEmpty(t *testing.T) {
	modes, count := FindMode(nil)
	if len(modes) != 0 || count != 0 {
		t.Errorf("FindMode(nil) == %q, %v", modes, count)
	}
}

func TestFindModeManyValuesGrowTheCounter(t *testing.T) {
	var values []string
	for i := 0; i < 100; i++ {
		values = append(values, string(rune('a'+i%26))+string(rune('a'+i/26)))
	}
	values = append(values, "zz", "zz")
	checkModes(t, values, []string{"zz"}, 2)
}

func TestFindModeBucketOrder(t *testing.T) {
	values := []string{"one", "two", "three", "four", "five", "two", "four"}

	expected := chaining.New()
	for _, value := range values {
		expected.Put(value, true)
	}
	var expectedOrder []string
	for it := expected.Iter(); it.Next(); {
		if it.Key() == "two" || it.Key() == "four" {
			expectedOrder = append(expectedOrder, it.Key())
		}
	}

	modes, count := FindMode(values)
	if count != 2 {
		t.Fatalf("count %v, expected 2", count)
	}
	if len(modes) != 2 || modes[0] != expectedOrder[0] || modes[1] != expectedOrder[1] {
		t.Errorf("modes %q are not in bucket order %q", modes, expectedOrder)
	}
}

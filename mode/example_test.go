package mode_test

import (
	"fmt"

	"github.com/xaionaro-go/primemap/mode"
)

func ExampleFindMode() {
	modes, count := mode.FindMode([]string{"apple", "apple", "grape", "melon", "peach"})
	fmt.Println(modes, count)

	// Output:
	// [apple] 2
}

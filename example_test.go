package primemap_test

import (
	"fmt"

	"github.com/xaionaro-go/primemap"
	"github.com/xaionaro-go/primemap/hasher"
)

func ExampleNewOpenAddressing() {
	m := primemap.NewOpenAddressing(20, hasher.SumOfCodes)
	fmt.Println(m.Capacity())

	m.Put("key1", 10)
	m.Put("key1", 20)
	fmt.Println(m.Get("key1"))

	m.Remove("key1")
	_, err := m.Get("key1")
	fmt.Println(err == primemap.NotFound, m.Len(), m.EmptyBuckets())

	// Output:
	// 23
	// 20 <nil>
	// true 0 22
}

func ExampleNewChaining() {
	m := primemap.NewChaining(5, hasher.SumOfCodes)
	m.Put("ab", 1)
	m.Put("ba", 2)
	fmt.Print(m)

	// Output:
	// 0: ba => 2 -> ab => 1
	// 1: -
	// 2: -
	// 3: -
	// 4: -
}

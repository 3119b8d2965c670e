package chaining

import (
	"bytes"
	"fmt"

	I "github.com/xaionaro-go/primemap/interfaces"
)

type node struct {
	key   I.Key
	value interface{}
	next  *node
}

// chain is a singly linked list owning its nodes. New nodes go to the head.
type chain struct {
	head   *node
	length int
}

func (c *chain) find(key I.Key) *node {
	for n := c.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

func (c *chain) insert(key I.Key, value interface{}) {
	c.head = &node{key: key, value: value, next: c.head}
	c.length++
}

// remove unlinks the node of key and reports whether there was one.
func (c *chain) remove(key I.Key) bool {
	for link := &c.head; *link != nil; link = &(*link).next {
		if (*link).key != key {
			continue
		}
		*link = (*link).next
		c.length--
		return true
	}
	return false
}

func (c *chain) String() string {
	if c.head == nil {
		return "-"
	}
	var buf bytes.Buffer
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			buf.WriteString(" -> ")
		}
		fmt.Fprintf(&buf, "%v => %v", n.key, n.value)
	}
	return buf.String()
}

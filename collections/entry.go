package collections

import "fmt"

// Entry is one key/value pair of a [Dictionary].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String returns "key=value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// Package arr provides the small set of generic slice primitives that the
// storage types in package collections and the repair logic in package
// guard are built on.
//
// All helpers operate on plain []T values. Helpers that return a slice
// never alias their input unless documented otherwise:
//
//	arr.IndexOf([]string{"a", "b"}, "b")        // → 1
//	arr.Insert([]int{1, 3}, 1, 2)               // → [1 2 3]
//	arr.RemoveAt([]int{1, 2, 3}, 0)             // → [2 3]
//	arr.Unique([]string{"x", "y", "x"})         // → [x y]
//	arr.DuplicateIndexes([]string{"x", "y", "x"}) // → [2]
//
// Positional helpers report an out-of-range index with [ErrIndexOutOfRange]
// instead of panicking, so callers can surface it as an ordinary error.
package arr

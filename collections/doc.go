// Package collections defines the mutable collection contracts that the
// decorators in package guard implement, the forwarding bases those
// decorators are built from, and a few plain storage types to wrap.
//
// # Contracts
//
// Three generic interfaces describe what a caller may do with a collection:
//
//   - [Collection][T]: count, enumerate, copy out, Add, Remove, Clear, Contains.
//   - [List][T]: a Collection with positional Get, Set, IndexOf, Insert, RemoveAt.
//   - [Dictionary][K, V]: keyed Get, Set, TryGetValue, Add, Remove, ContainsKey.
//
// Every mutating or querying method returns an error. Plain storage only fails
// on bad positions or keys; decorators also fail when their rule is violated.
// Errors wrap the sentinels in errors.go, so callers test them with
// [errors.Is].
//
// # Storage
//
// The storage types are views where the caller already owns the data:
//
//	tags := []string{"go", "collections"}
//	l := collections.Wrap(&tags)
//	_ = l.Add("generics")   // tags is now [go collections generics]
//
//	m := map[string]int{"a": 1}
//	d := collections.WrapMap(m) // writes through d are visible in m
//
// [NewList] and [NewOrderedDict] own their storage. [ConcurrentDict] is backed
// by xsync.MapOf and is the only type here that reports IsSynchronized.
//
// # Bases
//
// [CollectionBase], [ListBase] and [DictionaryBase] forward every call to an
// inner value and report a fixed set of [Flags] instead of the inner value's
// own. A decorator embeds a base and re-declares only the methods its rule
// touches:
//
//	type evenList struct{ *collections.ListBase[int] }
//
//	func (l evenList) Add(n int) error {
//	    if n%2 != 0 {
//	        return collections.ErrInvalidArgument
//	    }
//	    return l.ListBase.Add(n)
//	}
//
// Go has no virtual dispatch, so a base never calls its own seams
// internally; code that must honour the override holds the decorator through
// the interface.
//
// # Untyped access
//
// [Untyped], [UntypedList] and [UntypedDictionary] adapt the generic contracts
// to an any-typed surface for code that only knows values at runtime. Each
// method checks the dynamic type and then calls the generic method, so rules
// enforced by a decorator apply exactly once.
package collections

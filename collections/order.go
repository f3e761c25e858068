package collections

import "sync"

// keyOrder remembers the order in which the keys of an unordered map were
// first enumerated, so that Keys, Values, Entries and Each agree with each
// other from one call to the next. Keys that disappear from the map are
// dropped and new keys are appended in the order the map yields them.
type keyOrder[K comparable] struct {
	mu   sync.Mutex
	keys []K
}

// resolve returns the current key order. has reports whether a remembered
// key is still present; each enumerates the map's keys.
func (o *keyOrder[K]) resolve(has func(K) bool, each func(yield func(K))) []K {
	o.mu.Lock()
	defer o.mu.Unlock()

	seen := make(map[K]struct{}, len(o.keys))
	kept := o.keys[:0]
	for _, k := range o.keys {
		if has(k) {
			kept = append(kept, k)
			seen[k] = struct{}{}
		}
	}
	clear(o.keys[len(kept):])
	each(func(k K) {
		if _, ok := seen[k]; !ok {
			kept = append(kept, k)
			seen[k] = struct{}{}
		}
	})
	o.keys = kept

	out := make([]K, len(kept))
	copy(out, kept)
	return out
}

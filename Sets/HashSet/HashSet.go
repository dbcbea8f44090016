package HashSet

// HashSet is the unordered Set variant, a thin wrapper over the built-in
// map. It serves as the baseline the tree-backed sets are measured against
// in benchmarks. Like the rest of the family it only grows.
type HashSet[E comparable] struct {
	m map[E]struct{}
}

// New HashSet of type E with room for size elements before rehashing.
func New[E comparable](size uint) *HashSet[E] {
	return &HashSet[E]{make(map[E]struct{}, size)}
}

// Put e into the set. Returns true if e wasn't already present.
// Time: amortized O(1)
func (u *HashSet[E]) Put(e E) bool {
	if _, in := u.m[e]; in {
		return false
	}
	u.m[e] = struct{}{}
	return true
}

// Has e in the set.
// Time: O(1)
func (u *HashSet[E]) Has(e E) bool {
	_, in := u.m[e]
	return in
}

// Size of the set.
// Time: O(1)
func (u *HashSet[E]) Size() uint {
	return uint(len(u.m))
}

// Range over the elements in unspecified order, stopping when f returns
// false. The set mustn't be modified during iteration.
func (u *HashSet[E]) Range(f func(E) bool) {
	for e := range u.m {
		if !f(e) {
			return
		}
	}
}

// Implemented reports that HashSet is a complete Set variant, not a stub.
func (u *HashSet[E]) Implemented() bool {
	return true
}

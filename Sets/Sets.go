package Sets

// Set is the capability contract shared by the set variants in this module.
// These sets hold unique elements and only grow: there is no removal, so a
// successful Put stays visible for the lifetime of the instance.
// Instances aren't safe for concurrent use; callers needing that must
// synchronize externally.
type Set[E any] interface {
	//Put e into the set. Returning true if e wasn't already present.
	//Putting an existing element is a no-op.
	Put(E) bool
	//Has e in the set.
	Has(E) bool
	//Size of the set.
	Size() uint
	//Range over the elements, stopping when f returns false. Iteration
	//order depends on the implementation. The set mustn't be modified
	//during iteration.
	Range(func(E) bool)
	//Implemented reports whether this variant is complete rather than a
	//stub. Frameworks holding several variants probe this before use.
	Implemented() bool
}

// SortedSet is a Set that keeps its elements ordered. Range on a SortedSet
// yields elements in ascending order.
type SortedSet[E any] interface {
	Set[E]
	//Height of the underlying tree. An empty set has height -1.
	Height() int
	//PreOrder traversal: element first, then both subtrees.
	PreOrder(func(E) bool)
	//InOrder traversal, yielding elements in ascending order.
	InOrder(func(E) bool)
	//PostOrder traversal: both subtrees first, then the element.
	PostOrder(func(E) bool)
	//Minimum element of the set.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//Corrupt reports whether the structure violates its invariants, when
	//the shape or cached data at some node breaks the properties of that
	//specific implementation. A healthy set always returns false.
	Corrupt() bool
}

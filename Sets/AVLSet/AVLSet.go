package AVLSet

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AVLSet is a grow-only set of unique values backed by a height-balanced
// binary search tree. It maintains balance through rotations by checking
// the cached heights of subtrees after every insertion, keeping the height
// D of the tree below 1.44*log2(n+1.5), so Put and Has are O(log n).
// Balancing can be turned off at construction, in which case the structure
// is a plain binary search tree whose shape depends entirely on insertion
// order; inserting sorted input then degenerates it into a linked list.
// The toggle exists so balanced and unbalanced behavior can be compared on
// identical inputs at runtime.
// There is no removal: the set only grows, and the whole node graph is
// released together when the set becomes unreachable.
type AVLSet[T constraints.Ordered] struct {
	root    nodePtr[T] //nil for an empty tree.
	sz      uint
	balance bool //fixed at construction; Clone propagates it, Move resets it.
}

// New AVLSet holding values of type T. balance controls whether the tree
// rebalances itself on insertion; it can't be changed afterwards.
func New[T constraints.Ordered](balance bool) *AVLSet[T] {
	return &AVLSet[T]{balance: balance}
}

// InvalidSliceError is the panic value of Build when safe==true and the
// given slice isn't strictly ascending.
type InvalidSliceError struct {
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not strictly ascending: %v followed by %v", e.Prev, e.Next)
}

// Build an AVLSet from the given sorted slice recursively. This is faster
// than repeatedly calling Put. The slice must be sorted in ascending order
// and mustn't contain duplicate elements. If safe==true, this function
// checks the conditions and panics with InvalidSliceError when they're
// broken; otherwise the check is skipped and a bad slice corrupts the tree.
// The returned set has balancing enabled.
// Time: O(n)
func Build[T constraints.Ordered](sli []T, safe bool) *AVLSet[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i] <= sli[i-1] {
				panic(InvalidSliceError{sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		l, r := build(s[:mid]), build(s[mid+1:])
		return &node[T]{s[mid], l, r, 1 + max(height(l), height(r))}
	}
	return &AVLSet[T]{build(sli), uint(len(sli)), true}
}

// insert v into the subtree rooted at *curPtr recursively. curPtr is passed
// by reference because a rotation may change which node the link points at.
// Returns false when v is already present, in which case nothing changes:
// no allocation, no height updates, no rotation. On a successful insert,
// every node on the unwind path recomputes its height and, when balancing
// is on and its children's heights differ by more than 1, applies exactly
// one rotation chosen by where v landed relative to the node and its taller
// child.
func (u *AVLSet[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return true
	}
	inserted := false
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v == cur.v {
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		cur.h = 1 + max(height(cur.l), height(cur.r))
		if d := height(cur.l) - height(cur.r); u.balance && (d > 1 || d < -1) {
			if v < cur.v {
				if v < cur.l.v {
					rotateRight(curPtr)
				} else {
					rotateLR(curPtr)
				}
			} else if v < cur.r.v {
				rotateRL(curPtr)
			} else {
				rotateLeft(curPtr)
			}
		}
	}
	return inserted
}

// Put v into the set. Returns true if v wasn't already present; putting an
// existing element is a no-op. Recursive.
// Time: O(D)
func (u *AVLSet[T]) Put(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// Has v in the set.
// Time: O(D); Space: O(1)
func (u AVLSet[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Size of the set.
// Time: O(1)
func (u AVLSet[T]) Size() uint {
	return u.sz
}

// Height of the tree. An empty tree has height -1, a single node 0.
// Time: O(1)
func (u AVLSet[T]) Height() int {
	return height(u.root)
}

// Implemented reports that AVLSet is a complete Set variant, not a stub.
func (u AVLSet[T]) Implemented() bool {
	return true
}

// PreOrder calls f on each element in pre-order, stopping early when f
// returns false. f mustn't modify the set.
// Time: O(n)
func (u AVLSet[T]) PreOrder(f func(T) bool) {
	preOrder(u.root, f)
}

// InOrder calls f on each element in ascending order, stopping early when f
// returns false. f mustn't modify the set.
// Time: O(n)
func (u AVLSet[T]) InOrder(f func(T) bool) {
	inOrder(u.root, f)
}

// PostOrder calls f on each element in post-order, stopping early when f
// returns false. f mustn't modify the set.
// Time: O(n)
func (u AVLSet[T]) PostOrder(f func(T) bool) {
	postOrder(u.root, f)
}

// Range [Sets.Set.Range]. Equivalent to InOrder.
func (u AVLSet[T]) Range(f func(T) bool) {
	inOrder(u.root, f)
}

// Minimum element of the set.
// Time: O(D); Space: O(1)
func (u AVLSet[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum element of the set.
// Time: O(D); Space: O(1)
func (u AVLSet[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Clone returns a deep copy of the set: same shape, values, heights, and
// balancing flag, sharing no nodes with u. Mutating either set never
// affects the other.
// Time: O(n)
func (u AVLSet[T]) Clone() *AVLSet[T] {
	return &AVLSet[T]{copyTree(u.root), u.sz, u.balance}
}

// Move transfers ownership of the whole node graph to the returned set
// without copying or visiting any node. u is left as an empty,
// non-balancing set that remains fully usable.
// Time: O(1)
func (u *AVLSet[T]) Move() *AVLSet[T] {
	d := &AVLSet[T]{u.root, u.sz, u.balance}
	u.root, u.sz, u.balance = nil, 0, false
	return d
}

// corrupt checks the subtree rooted at cur: every value must lie strictly
// between lo and hi (nil meaning unbounded), every cached height must match
// the recursive definition, and, when balance is set, children's heights
// may differ by at most 1.
func corrupt[T constraints.Ordered](cur nodePtr[T], lo, hi *T, balance bool) bool {
	if cur == nil {
		return false
	}
	if lo != nil && cur.v <= *lo {
		return true
	}
	if hi != nil && cur.v >= *hi {
		return true
	}
	if cur.h != 1+max(height(cur.l), height(cur.r)) {
		return true
	}
	if d := height(cur.l) - height(cur.r); balance && (d > 1 || d < -1) {
		return true
	}
	return corrupt(cur.l, lo, &cur.v, balance) || corrupt(cur.r, &cur.v, hi, balance)
}

// Corrupt [Sets.SortedSet.Corrupt]. For AVLSet this verifies search order,
// height caches, and, when balancing is enabled, the balance factor of
// every node. Recursive.
// Time: O(n)
func (u AVLSet[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil, u.balance)
}

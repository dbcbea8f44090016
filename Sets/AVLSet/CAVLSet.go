package AVLSet

// Ordered is implemented by user-defined types that order themselves.
// Arguments passed to LessThan and Equals are always of type T so no type
// checks are needed. For any two values exactly one of a.LessThan(b),
// a.Equals(b), b.LessThan(a) must hold.
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// CAVLSet is the version of AVLSet for user-defined types satisfying
// Ordered. All methods behave exactly as AVLSet's except for using
// Ordered.LessThan and Ordered.Equals for comparisons.
type CAVLSet[T Ordered[T]] struct {
	root    nodePtr[T]
	sz      uint
	balance bool
}

// New1 is the CAVLSet equivalence of New.
func New1[T Ordered[T]](balance bool) *CAVLSet[T] {
	return &CAVLSet[T]{balance: balance}
}

// Build1 is the CAVLSet equivalence of Build.
func Build1[T Ordered[T]](sli []T, safe bool) *CAVLSet[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !sli[i-1].LessThan(sli[i]) {
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
	return &CAVLSet[T]{build(sli), uint(len(sli)), true}
}

func (u *CAVLSet[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return true
	}
	inserted := false
	if v.LessThan(cur.v) {
		inserted = u.insert(&cur.l, v)
	} else if v.Equals(cur.v) {
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		cur.h = 1 + max(height(cur.l), height(cur.r))
		if d := height(cur.l) - height(cur.r); u.balance && (d > 1 || d < -1) {
			if v.LessThan(cur.v) {
				if v.LessThan(cur.l.v) {
					rotateRight(curPtr)
				} else {
					rotateLR(curPtr)
				}
			} else if v.LessThan(cur.r.v) {
				rotateRL(curPtr)
			} else {
				rotateLeft(curPtr)
			}
		}
	}
	return inserted
}

// Put [AVLSet.Put]. Recursive.
// Time: O(D)
func (u *CAVLSet[T]) Put(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// Has [AVLSet.Has].
// Time: O(D); Space: O(1)
func (u CAVLSet[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v.LessThan(cur.v) {
			cur = cur.l
		} else if v.Equals(cur.v) {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Size of the set.
// Time: O(1)
func (u CAVLSet[T]) Size() uint {
	return u.sz
}

// Height of the tree. An empty tree has height -1.
// Time: O(1)
func (u CAVLSet[T]) Height() int {
	return height(u.root)
}

// Implemented reports that CAVLSet is a complete Set variant, not a stub.
func (u CAVLSet[T]) Implemented() bool {
	return true
}

// PreOrder [AVLSet.PreOrder].
func (u CAVLSet[T]) PreOrder(f func(T) bool) {
	preOrder(u.root, f)
}

// InOrder [AVLSet.InOrder].
func (u CAVLSet[T]) InOrder(f func(T) bool) {
	inOrder(u.root, f)
}

// PostOrder [AVLSet.PostOrder].
func (u CAVLSet[T]) PostOrder(f func(T) bool) {
	postOrder(u.root, f)
}

// Range [Sets.Set.Range]. Equivalent to InOrder.
func (u CAVLSet[T]) Range(f func(T) bool) {
	inOrder(u.root, f)
}

// Minimum element of the set.
// Time: O(D); Space: O(1)
func (u CAVLSet[T]) Minimum() (T, bool) {
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
func (u CAVLSet[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Clone [AVLSet.Clone].
// Time: O(n)
func (u CAVLSet[T]) Clone() *CAVLSet[T] {
	return &CAVLSet[T]{copyTree(u.root), u.sz, u.balance}
}

// Move [AVLSet.Move].
// Time: O(1)
func (u *CAVLSet[T]) Move() *CAVLSet[T] {
	d := &CAVLSet[T]{u.root, u.sz, u.balance}
	u.root, u.sz, u.balance = nil, 0, false
	return d
}

func corrupt1[T Ordered[T]](cur nodePtr[T], lo, hi *T, balance bool) bool {
	if cur == nil {
		return false
	}
	if lo != nil && !(*lo).LessThan(cur.v) {
		return true
	}
	if hi != nil && !cur.v.LessThan(*hi) {
		return true
	}
	if cur.h != 1+max(height(cur.l), height(cur.r)) {
		return true
	}
	if d := height(cur.l) - height(cur.r); balance && (d > 1 || d < -1) {
		return true
	}
	return corrupt1(cur.l, lo, &cur.v, balance) || corrupt1(cur.r, &cur.v, hi, balance)
}

// Corrupt [AVLSet.Corrupt]. Recursive.
// Time: O(n)
func (u CAVLSet[T]) Corrupt() bool {
	return corrupt1(u.root, nil, nil, u.balance)
}

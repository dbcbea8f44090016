package AVLSet

// A node in the AVL tree.
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
	h    int
}

// Pointer to a node. nil represents an absent subtree. A new node is always
// a leaf with height 0.
type nodePtr[T any] *node[T]

// height of the subtree rooted at n. An absent subtree has height -1, so a
// leaf has height 0 and every node satisfies h=1+max(height(l),height(r)).
func height[T any](n nodePtr[T]) int {
	if n == nil {
		return -1
	}
	return n.h
}

// rotateRight performs a right rotation on nodePtr n (the LL case). n is
// passed by reference in order to modify its content: the link that pointed
// at *n points at its former left child afterwards. Heights of the two
// re-parented nodes are recomputed, demoted node first since the promoted
// one depends on it.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.h = 1 + max(height(r.l), height(r.r))
	lc.h = 1 + max(height(lc.l), r.h)
	*n = lc
}

// rotateLeft performs a left rotation on nodePtr n (the RR case). n is
// passed by reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.h = 1 + max(height(r.l), height(r.r))
	rc.h = 1 + max(r.h, height(rc.r))
	*n = rc
}

// rotateLR handles the LR case: the left child's right subtree is too tall.
// Rotating the left child left reduces it to the LL case.
func rotateLR[T any](n *nodePtr[T]) {
	rotateLeft(&(*n).l)
	rotateRight(n)
}

// rotateRL handles the RL case, the mirror of rotateLR.
func rotateRL[T any](n *nodePtr[T]) {
	rotateRight(&(*n).r)
	rotateLeft(n)
}

// copyTree clones the subtree rooted at cur: same shape, values, and
// heights, entirely new nodes. Children are copied before their parent.
// Time: O(n)
func copyTree[T any](cur nodePtr[T]) nodePtr[T] {
	if cur == nil {
		return nil
	}
	return &node[T]{cur.v, copyTree(cur.l), copyTree(cur.r), cur.h}
}

// preOrder visits cur, then the left subtree, then the right. Returns false
// once f does, abandoning the rest of the traversal.
func preOrder[T any](cur nodePtr[T], f func(T) bool) bool {
	if cur == nil {
		return true
	}
	return f(cur.v) && preOrder(cur.l, f) && preOrder(cur.r, f)
}

// inOrder visits the left subtree, then cur, then the right, giving
// ascending order under the search invariant.
func inOrder[T any](cur nodePtr[T], f func(T) bool) bool {
	if cur == nil {
		return true
	}
	return inOrder(cur.l, f) && f(cur.v) && inOrder(cur.r, f)
}

// postOrder visits both subtrees before cur.
func postOrder[T any](cur nodePtr[T], f func(T) bool) bool {
	if cur == nil {
		return true
	}
	return postOrder(cur.l, f) && postOrder(cur.r, f) && f(cur.v)
}

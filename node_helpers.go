package rrbtree

// makeLeaf builds a leaf from a copy of items, never retaining the caller's
// backing array.
func (t *Tree[T]) makeLeaf(items []T) *leaf[T] {
	return &leaf[T]{slots: append([]T(nil), items...)}
}

// makeBranch builds a branch from copies of children/sizes. Both slices
// must have the same length; sizes[i] is the cumulative element count at
// and below children[i] (S1).
func (t *Tree[T]) makeBranch(children []node[T], sizes []int) *branch[T] {
	return &branch[T]{
		slots:     append([]node[T](nil), children...),
		sizeTable: append([]int(nil), sizes...),
	}
}

// nodeGet reads the element at index under n, a node at the given height.
func (t *Tree[T]) nodeGet(n node[T], height int, index int) T {
	if height == 0 {
		return t.leafGet(n.(*leaf[T]), index)
	}
	return t.branchGet(n.(*branch[T]), height, index)
}

// nodeSet overwrites the element at index under n, a node at the given
// height, returning the path-copied node with the write applied.
func (t *Tree[T]) nodeSet(n node[T], height int, index int, value T) node[T] {
	if height == 0 {
		return t.leafSet(n.(*leaf[T]), index, value)
	}
	return t.branchSet(n.(*branch[T]), height, index, value)
}

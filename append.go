package rrbtree

// Push appends value to the end of the tree and returns the resulting
// tree. It path-copies only the rightmost spine (§4.5): the receiver t is
// left unmodified and remains independently usable.
//
// Amortized cost is O(log_M N); a heighten allocates one new branch per
// level along the right spine, at most once per call.
func (t *Tree[T]) Push(value T) (*Tree[T], error) {
	out := t.Clone()
	if out.root == nil {
		out.root = t.makeLeaf([]T{value})
		out.height = 0
		out.length = 1
		return out, nil
	}

	updated, ok := t.pushSpine(out.root, out.height, value)
	if !ok {
		tracer().Debugf("rrbtree: heighten at height %d, length %d", out.height, out.length)
		heightened := t.makeBranch([]node[T]{out.root}, []int{out.length})
		updated, ok = t.pushSpine(heightened, out.height+1, value)
		assert(ok, "push after heighten must succeed")
		out.height++
	}
	out.root = updated
	out.length++
	return out, nil
}

// PushAll folds Push over vs in order, returning the resulting tree. It is
// the Go-idiomatic replacement for the reference's TreePushArray/
// LeafPushArray bulk-push helpers (§9.2).
func (t *Tree[T]) PushAll(vs ...T) (*Tree[T], error) {
	out := t
	for _, v := range vs {
		var err error
		out, err = out.Push(v)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// pushSpine tries to append value to the rightmost subtree of n, a node at
// the given height (height 0 means n is a leaf). It returns the path-copied
// node with value appended and true on success, or the original n and
// false when n is already at capacity and cannot accept another element —
// the signal that the caller must heighten (§4.5) or propagate the
// overflow up one more level (§4.2).
func (t *Tree[T]) pushSpine(n node[T], height int, value T) (node[T], bool) {
	if height == 0 {
		l := n.(*leaf[T])
		if len(l.slots) >= t.cfg.M {
			return n, false
		}
		cloned := t.cloneLeaf(l)
		t.leafPush(cloned, value)
		return cloned, true
	}

	b := n.(*branch[T])
	if b.length() != 0 {
		last := b.length() - 1
		if updatedChild, ok := t.pushSpine(b.slots[last], height-1, value); ok {
			cloned := t.cloneBranch(b)
			cloned.slots[last] = updatedChild
			cloned.sizeTable[last]++
			return cloned, true
		}
	}
	if b.length() == t.cfg.M {
		return n, false
	}
	child := t.singleton(height-1, value)
	cloned := t.cloneBranch(b)
	t.pushChild(cloned, child, 1)
	return cloned, true
}

// singleton builds a freshly allocated chain of nodes from height down to
// a leaf, holding exactly one element, value. Because every node on this
// chain is new, it needs no cloning.
func (t *Tree[T]) singleton(height int, value T) node[T] {
	if height == 0 {
		return t.makeLeaf([]T{value})
	}
	child := t.singleton(height-1, value)
	return t.makeBranch([]node[T]{child}, []int{1})
}

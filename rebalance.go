package rrbtree

// This file implements §4.6's rebalance kernel: squash and merge, used by
// the concatenation driver (concat.go) to bound structural slack after
// joining two trees without forcing strict radix balance.
//
// Both routines operate on a flat slice of sibling nodes that are all the
// same kind (all leaves, or all branches at the same height) — "parameterized
// by child kind" per §4.6. Because leaf and branch both satisfy node[T] and
// both have a well-defined "how many of my M slots are filled" count
// (slotCount), squash and merge are written once, generically, rather than
// duplicated per kind; §4.6.1 explains why this also gives the branch-seam
// case "for free".

// compactness is one less than the number of children beyond the minimum
// needed to hold slots elements at capacity m (§4.6): a run packed as
// tightly as possible gives -1, a run with one spare child gives 0. The
// relaxed tree tolerates compactness up to C.
func compactness(nodesCount, slotsSum, m int) int {
	return nodesCount - ceilDiv(slotsSum, m) - 1
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// slotCount reports how many of a node's own M capacity slots are filled:
// the raw value count for a leaf, the child count for a branch. This is
// the "occupancy" the rebalance kernel reasons about — not the deep
// element total a branch's size table tracks (§4.6 vs §4.2).
func slotCount[T any](n node[T]) int {
	switch v := n.(type) {
	case *leaf[T]:
		return len(v.slots)
	case *branch[T]:
		return len(v.slots)
	default:
		panic("rrbtree: unknown node kind")
	}
}

// squash packs all units found in window (raw values for a window of
// leaves, child nodes for a window of branches) into a minimal run of
// fresh, fully-packed containers of the same kind, except possibly the
// last. It preserves order and eliminates all internal slack across the
// packed run (§4.6's squash).
func (t *Tree[T]) squash(window []node[T]) []node[T] {
	if len(window) == 0 {
		return nil
	}
	if window[0].isLeaf() {
		leaves := make([]*leaf[T], len(window))
		for i, n := range window {
			leaves[i] = n.(*leaf[T])
		}
		out := squashLeaves(leaves, t.cfg.M)
		result := make([]node[T], len(out))
		for i, l := range out {
			result[i] = l
		}
		return result
	}
	branches := make([]*branch[T], len(window))
	for i, n := range window {
		branches[i] = n.(*branch[T])
	}
	out := t.squashBranches(branches)
	result := make([]node[T], len(out))
	for i, b := range out {
		result[i] = b
	}
	return result
}

func squashLeaves[T any](src []*leaf[T], m int) []*leaf[T] {
	var out []*leaf[T]
	cur := &leaf[T]{}
	for _, l := range src {
		for _, v := range l.slots {
			if len(cur.slots) == m {
				out = append(out, cur)
				cur = &leaf[T]{}
			}
			cur.slots = append(cur.slots, v)
		}
	}
	if len(cur.slots) > 0 {
		out = append(out, cur)
	}
	return out
}

// squashBranches packs the children of src (their grandchildren, from this
// level's perspective) into a minimal run of fresh branches of capacity
// cfg.M. The grandchildren themselves are reused by reference, untouched —
// only the parent containers are rebuilt, per §4.6.1.
func (t *Tree[T]) squashBranches(src []*branch[T]) []*branch[T] {
	var out []*branch[T]
	var curChildren []node[T]
	flush := func() {
		if len(curChildren) > 0 {
			out = append(out, t.buildBranch(curChildren))
			curChildren = nil
		}
	}
	for _, b := range src {
		for _, child := range b.slots {
			if len(curChildren) == t.cfg.M {
				flush()
			}
			curChildren = append(curChildren, child)
		}
	}
	flush()
	return out
}

// merge produces an array of len(src)-toRemove nodes holding the same
// content as src, by locally squashing the shortest prefix of a suffix
// sufficient to recover toRemove containers (§4.6's merge). It is the
// policy layer on top of squash: most of src passes through untouched,
// bounding the cost of a concatenation to the seam rather than the whole
// tree.
func (t *Tree[T]) merge(src []node[T], toRemove int) []node[T] {
	if toRemove <= 0 {
		return src
	}
	n := len(src)
	result := make([]node[T], 0, n-toRemove)

	i := 0
	for i < n && slotCount[T](src[i]) == t.cfg.M {
		result = append(result, src[i])
		i++
	}

	// From the first non-full container, probe a growing window until
	// squashing it yields exactly the required reduction (or better,
	// clamped by construction): squashedNodes <= selectedNodes-toRemove.
	// This always terminates: appending one more fully packed container
	// to the window always permits at least one net reduction once
	// squashed (§4.6).
	selectedNodes := 2
	selectedSlots := slotCount[T](src[i])
	for {
		assert(i+selectedNodes <= n, "merge window grew past the end of src")
		selectedSlots += slotCount[T](src[i+selectedNodes-1])
		squashedNodes := ceilDiv(selectedSlots, t.cfg.M)
		if squashedNodes <= selectedNodes-toRemove {
			window := src[i : i+selectedNodes]
			result = append(result, t.squash(window)...)
			i += selectedNodes
			break
		}
		selectedNodes++
	}

	result = append(result, src[i:]...)
	return result
}

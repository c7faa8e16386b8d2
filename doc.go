/*
Package rrbtree implements the core of a Relaxed Radix Balanced Tree
(RRB-tree): an indexed sequence that supports append, random-access
get/set, and logarithmic-time concatenation.

Unlike a strict radix trie, interior nodes (Branches) may hold children of
slightly uneven sizes. A per-Branch size table records the cumulative
element count at and below each child slot, which lets indexing correct a
radix-shifted guess with a short linear probe instead of requiring every
Branch to be perfectly packed. That relaxation is what makes Concat cheap:
two trees can be joined by rebalancing only the seam between them, never
the whole structure.

Push/Set/Concat return a new Tree built by path-copying the modified
spine. The new Tree shares every untouched node with the receiver, and the
receiver stays usable and unchanged.

Typical usage:

	t, _ := rrbtree.New[int](rrbtree.Config{M: 32, C: 1})
	t, _ = t.Push(1)
	t, _ = t.Push(2)
	v, _ := t.Get(0)

Prepend, split, insert-at, delete-at, iteration, and serialization are not
implemented here.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rrbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rrbtree'.
func tracer() tracing.Trace {
	return tracing.Select("rrbtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

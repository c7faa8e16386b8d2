package rrbtree

import "testing"

// buildManualTree assembles a Tree directly from a given root, height and
// length, bypassing Push. Used to reproduce the reference implementation's
// worked concatenation example exactly (original_source/rrbt.c's main()),
// rather than reaching the same shape indirectly through PushAll.
func buildManualTree[T any](cfg Config, root node[T], height, length int) *Tree[T] {
	return &Tree[T]{cfg: cfg.normalized(), root: root, height: height, length: length}
}

func TestConcatWorkedExampleFromReference(t *testing.T) {
	cfg := Config{M: 4, C: 1}

	leaf1 := &leaf[int]{slots: []int{1, 2, 3, 4}}
	leaf2 := &leaf[int]{slots: []int{5, 6}}
	branch1 := &branch[int]{slots: []node[int]{leaf1, leaf2}, sizeTable: []int{4, 6}}
	left := buildManualTree[int](cfg, branch1, 1, 6)

	leaf3 := &leaf[int]{slots: []int{7, 8, 9}}
	leaf4 := &leaf[int]{slots: []int{10, 11}}
	leaf5 := &leaf[int]{slots: []int{12, 13}}
	leaf6 := &leaf[int]{slots: []int{14, 15, 16}}
	branch2 := &branch[int]{
		slots:     []node[int]{leaf3, leaf4, leaf5, leaf6},
		sizeTable: []int{3, 5, 7, 10},
	}
	right := buildManualTree[int](cfg, branch2, 1, 10)

	if err := left.Check(); err != nil {
		t.Fatalf("left tree invalid: %v", err)
	}
	if err := right.Check(); err != nil {
		t.Fatalf("right tree invalid: %v", err)
	}

	result, err := left.Concat(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.Check(); err != nil {
		t.Fatalf("concat result violates invariants: %v", err)
	}
	if result.Len() != 16 {
		t.Fatalf("expected length 16, got %d", result.Len())
	}

	// compactness(6 leaves, 16 elements, M=4) = 1 = C, so merge is a no-op
	// here and the six original leaves simply split across two new
	// branches under a fresh root (§4.7).
	if result.Height() != 2 {
		t.Fatalf("expected height 2 after wrapping two branches, got %d", result.Height())
	}

	for i := 1; i <= 16; i++ {
		got, err := result.Get(i - 1)
		if err != nil {
			t.Fatalf("Get(%d): unexpected error %v", i-1, err)
		}
		if got != i {
			t.Fatalf("Get(%d) = %d, want %d", i-1, got, i)
		}
	}

	if left.Len() != 6 || right.Len() != 10 {
		t.Fatalf("concat mutated an input tree")
	}
}

func TestConcatWithEmptyTreeIsIdentity(t *testing.T) {
	cfg := Config{M: 4}
	empty, _ := New[int](cfg)
	populated, _ := New[int](cfg)
	populated, _ = populated.PushAll(1, 2, 3, 4, 5)

	left, err := populated.Concat(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 5 {
		t.Fatalf("expected concat with empty right to preserve length, got %d", left.Len())
	}

	right, err := empty.Concat(populated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if right.Len() != 5 {
		t.Fatalf("expected concat with empty left to preserve length, got %d", right.Len())
	}
}

func TestConcatRejectsMismatchedConfig(t *testing.T) {
	a, _ := New[int](Config{M: 4})
	a, _ = a.PushAll(1, 2)
	b, _ := New[int](Config{M: 8})
	b, _ = b.PushAll(3, 4)

	if _, err := a.Concat(b); err == nil {
		t.Fatalf("expected an error when concatenating trees with different configs")
	}
}

func TestConcatUnequalHeights(t *testing.T) {
	cfg := Config{M: 4}
	left, _ := New[int](cfg)
	left, _ = left.PushAll(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17)
	right, _ := New[int](cfg)
	right, _ = right.PushAll(100, 101)

	if left.Height() == right.Height() {
		t.Fatalf("test setup expected trees of unequal height")
	}

	result, err := left.Concat(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.Check(); err != nil {
		t.Fatalf("concat result violates invariants: %v", err)
	}
	if result.Len() != left.Len()+right.Len() {
		t.Fatalf("expected length %d, got %d", left.Len()+right.Len(), result.Len())
	}
	for i := 0; i < left.Len(); i++ {
		got, _ := result.Get(i)
		want, _ := left.Get(i)
		if got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
	for i := 0; i < right.Len(); i++ {
		got, _ := result.Get(left.Len() + i)
		want, _ := right.Get(i)
		if got != want {
			t.Fatalf("Get(%d) = %d, want %d", left.Len()+i, got, want)
		}
	}
}

package rbtree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intLess(a, b int) bool { return a < b }

func identity[T any](v T) T { return v }

func newIntTree(t testing.TB) *Tree[int, int] {
	t.Helper()
	tree, err := New(Config[int, int]{KeyOf: identity[int], Less: intLess})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

// item carries a tag to tell apart values with equal keys.
type item struct {
	key int
	tag int
}

func newItemTree(t testing.TB) *Tree[item, int] {
	t.Helper()
	tree, err := New(Config[item, int]{
		KeyOf: func(it item) int { return it.key },
		Less:  intLess,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func values[V, K any](tree *Tree[V, K]) []V {
	return slices.Collect(tree.All())
}

func mustCheck[V, K any](t *testing.T, tree *Tree[V, K]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func mustValue[V, K any](t *testing.T, tree *Tree[V, K], p Position) V {
	t.Helper()
	v, err := tree.Value(p)
	if err != nil {
		t.Fatalf("Value(%s) failed: %v", p, err)
	}
	return v
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{Less: intLess})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing KeyOf, got %v", err)
	}
	_, err = New(Config[int, int]{KeyOf: identity[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing Less, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("expected empty tree, len=%d", tree.Len())
	}
	if tree.Begin() != tree.End() {
		t.Fatalf("expected Begin() == End() for empty tree")
	}
	if tree.Next(tree.End()) != tree.End() || tree.Prev(tree.End()) != tree.End() {
		t.Fatalf("expected Next/Prev of End to stay at End for empty tree")
	}
	if _, ok := tree.First(); ok {
		t.Fatalf("expected First() to report empty tree")
	}
	if _, err := tree.Value(tree.End()); !errors.Is(err, ErrEndPosition) {
		t.Fatalf("expected ErrEndPosition, got %v", err)
	}
	if tree.Find(1) != tree.End() || tree.LowerBound(1) != tree.End() || tree.UpperBound(1) != tree.End() {
		t.Fatalf("expected searches in empty tree to report End")
	}
	if n := tree.EraseUnique(1); n != 0 {
		t.Fatalf("expected EraseUnique on empty tree to remove nothing, removed %d", n)
	}
}

func TestUniqueInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if _, ok := tree.InsertUnique(k); !ok {
			t.Fatalf("InsertUnique(%d) rejected", k)
		}
		mustCheck(t, tree)
	}
	if got, want := values(tree), []int{1, 3, 4, 5, 7, 8, 9}; !slices.Equal(got, want) {
		t.Fatalf("in-order mismatch: got=%v want=%v", got, want)
	}
	if v := mustValue(t, tree, tree.LowerBound(4)); v != 4 {
		t.Fatalf("LowerBound(4) = %d, want 4", v)
	}
	if v := mustValue(t, tree, tree.UpperBound(4)); v != 5 {
		t.Fatalf("UpperBound(4) = %d, want 5", v)
	}
	if n := tree.EraseUnique(5); n != 1 {
		t.Fatalf("EraseUnique(5) = %d, want 1", n)
	}
	mustCheck(t, tree)
	if got, want := values(tree), []int{1, 3, 4, 7, 8, 9}; !slices.Equal(got, want) {
		t.Fatalf("in-order mismatch after erase: got=%v want=%v", got, want)
	}
}

func TestMultiInsertScenario(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{2, 2, 2, 1, 3} {
		if _, ok := tree.Insert(k); !ok {
			t.Fatalf("Insert(%d) reported false", k)
		}
	}
	mustCheck(t, tree)
	from, to := tree.EqualRange(2)
	if n := len(slices.Collect(tree.Range(from, to))); n != 3 {
		t.Fatalf("EqualRange(2) spans %d elements, want 3", n)
	}
	if n := tree.Count(2); n != 3 {
		t.Fatalf("Count(2) = %d, want 3", n)
	}
	if n := tree.EraseMulti(2); n != 3 {
		t.Fatalf("EraseMulti(2) = %d, want 3", n)
	}
	mustCheck(t, tree)
	if tree.Len() != 2 {
		t.Fatalf("Len() = %d after EraseMulti, want 2", tree.Len())
	}
	if got := values(tree); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestInsertUniqueReturnsExisting(t *testing.T) {
	tree := newItemTree(t)
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		tree.InsertUnique(item{key: k, tag: 1})
	}
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		before := tree.Len()
		p, ok := tree.InsertUnique(item{key: k, tag: 2})
		if ok {
			t.Fatalf("InsertUnique accepted duplicate key %d", k)
		}
		if tree.Len() != before {
			t.Fatalf("duplicate insert changed size from %d to %d", before, tree.Len())
		}
		if v := mustValue(t, tree, p); v.key != k || v.tag != 1 {
			t.Fatalf("expected existing value {%d 1}, got %+v", k, v)
		}
	}
	mustCheck(t, tree)
}

func TestInsertKeepsEqualKeysInInsertionOrder(t *testing.T) {
	tree := newItemTree(t)
	for i := 0; i < 50; i++ {
		tree.Insert(item{key: i % 5, tag: i})
	}
	mustCheck(t, tree)
	prev := item{key: -1, tag: -1}
	for v := range tree.All() {
		if v.key < prev.key || (v.key == prev.key && v.tag < prev.tag) {
			t.Fatalf("order violated: %+v after %+v", v, prev)
		}
		prev = v
	}
	// Find reports the last element of an equal run.
	if v := mustValue(t, tree, tree.Find(3)); v.tag != 48 {
		t.Fatalf("Find(3) reported tag %d, want 48", v.tag)
	}
	if v := mustValue(t, tree, tree.LowerBound(3)); v.tag != 3 {
		t.Fatalf("LowerBound(3) reported tag %d, want 3", v.tag)
	}
}

func TestNextPrevBoundaries(t *testing.T) {
	tree := newIntTree(t)
	for k := 1; k <= 10; k++ {
		tree.InsertUnique(k)
	}
	last := tree.Prev(tree.End())
	if v := mustValue(t, tree, last); v != 10 {
		t.Fatalf("Prev(End) = %d, want 10", v)
	}
	if tree.Next(last) != tree.End() {
		t.Fatalf("Next(max) should be End")
	}
	if tree.Next(tree.End()) != tree.End() {
		t.Fatalf("Next(End) should be End")
	}
	if tree.Prev(tree.Begin()) != tree.End() {
		t.Fatalf("Prev(min) should be End")
	}
	var forward, backward []int
	for p := tree.Begin(); p != tree.End(); p = tree.Next(p) {
		forward = append(forward, mustValue(t, tree, p))
	}
	for p := tree.Prev(tree.End()); p != tree.End(); p = tree.Prev(p) {
		backward = append(backward, mustValue(t, tree, p))
	}
	slices.Reverse(backward)
	if !slices.Equal(forward, backward) || len(forward) != 10 {
		t.Fatalf("walks disagree: forward=%v backward=%v", forward, backward)
	}
	if got := slices.Collect(tree.Backward()); got[0] != 10 || got[9] != 1 {
		t.Fatalf("unexpected backward iteration %v", got)
	}
}

func TestEraseReturnsFormerSuccessor(t *testing.T) {
	base := newIntTree(t)
	for k := 0; k < 64; k++ {
		base.InsertUnique(k * 2)
	}
	for k := 0; k < 64; k++ {
		tree := base.Clone()
		p := tree.Find(k * 2)
		succ := tree.Next(p)
		next, err := tree.Erase(p)
		if err != nil {
			t.Fatalf("Erase(%d) failed: %v", k*2, err)
		}
		mustCheck(t, tree)
		if next != succ {
			t.Fatalf("Erase(%d) returned %s, want %s", k*2, next, succ)
		}
		if k == 63 {
			if !next.IsEnd() {
				t.Fatalf("erasing the maximum should return End")
			}
			continue
		}
		if v := mustValue(t, tree, next); v != k*2+2 {
			t.Fatalf("Erase(%d) returned position of %d, want %d", k*2, v, k*2+2)
		}
	}
}

func TestErasePreservesOtherPositions(t *testing.T) {
	tree := newIntTree(t)
	positions := make(map[int]Position)
	for k := 0; k < 100; k++ {
		p, _ := tree.InsertUnique((k * 37) % 100)
		positions[(k*37)%100] = p
	}
	for k := 0; k < 100; k += 3 {
		if _, err := tree.Erase(positions[k]); err != nil {
			t.Fatalf("Erase(%d) failed: %v", k, err)
		}
		mustCheck(t, tree)
	}
	for k, p := range positions {
		v, err := tree.Value(p)
		if k%3 == 0 {
			if !errors.Is(err, ErrStalePosition) {
				t.Fatalf("expected erased position of %d to be stale, got %v", k, err)
			}
			continue
		}
		if err != nil || v != k {
			t.Fatalf("position of %d now denotes %d (err=%v)", k, v, err)
		}
	}
}

func TestPositionErrors(t *testing.T) {
	tree := newIntTree(t)
	other := newIntTree(t)
	for k := 0; k < 8; k++ {
		tree.InsertUnique(k)
		other.InsertUnique(k)
	}
	foreign := other.Find(3)
	if _, err := tree.Value(foreign); !errors.Is(err, ErrForeignPosition) {
		t.Fatalf("expected ErrForeignPosition, got %v", err)
	}
	if _, err := tree.Erase(foreign); !errors.Is(err, ErrForeignPosition) {
		t.Fatalf("expected ErrForeignPosition from Erase, got %v", err)
	}
	if _, err := tree.Value(Position{}); !errors.Is(err, ErrForeignPosition) {
		t.Fatalf("expected zero Position to be foreign, got %v", err)
	}
	p := tree.Find(3)
	if _, err := tree.Erase(p); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if _, err := tree.Erase(p); !errors.Is(err, ErrStalePosition) {
		t.Fatalf("expected ErrStalePosition on second erase, got %v", err)
	}
	if tree.Len() != 7 {
		t.Fatalf("failed erase changed the tree, len=%d", tree.Len())
	}
	// the slot is reused by the next insertion, the old position stays stale
	tree.InsertUnique(100)
	if tree.Valid(p) {
		t.Fatalf("expected reused slot not to revive a stale position")
	}
	if next, err := tree.Erase(tree.End()); err != nil || next != tree.End() {
		t.Fatalf("erasing End should be a no-op, got %s, %v", next, err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Next of a stale position to panic")
		}
	}()
	tree.Next(p)
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	for k := 0; k < 200; k++ {
		tree.InsertUnique((k * 71) % 200)
	}
	for k := 0; k < 200; k += 7 {
		tree.EraseUnique(k)
	}
	clone := tree.Clone()
	mustCheck(t, clone)
	if !sameShape(tree.Shape(), clone.Shape()) {
		t.Fatalf("clone does not preserve shape and colors")
	}
	if clone.Valid(tree.Begin()) {
		t.Fatalf("positions of the source must be foreign to the clone")
	}
	clone.InsertUnique(1000)
	clone.EraseMulti(1)
	if tree.Contains(1000) || !tree.Contains(1) {
		t.Fatalf("modifying the clone changed the source")
	}
	if st := clone.Stats(); st.FreeSlots != 1 || st.ArenaSlots != clone.Len()+1 {
		t.Fatalf("expected compact clone arena, got %s", st)
	}
}

func sameShape(a, b *ShapeNode[int]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && a.Color == b.Color &&
		sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

func TestMoveAndSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	tree.InsertUnique(1)
	p, _ := tree.InsertUnique(2)
	moved := tree.Move()
	if !tree.IsEmpty() || moved.Len() != 2 {
		t.Fatalf("Move: source len=%d, target len=%d", tree.Len(), moved.Len())
	}
	mustCheck(t, tree)
	mustCheck(t, moved)
	if v := mustValue(t, moved, p); v != 2 {
		t.Fatalf("position should follow moved contents, got %d", v)
	}
	tree.InsertUnique(7)
	tree.Swap(moved)
	if tree.Len() != 2 || moved.Len() != 1 {
		t.Fatalf("Swap: len=%d, other len=%d", tree.Len(), moved.Len())
	}
	if v := mustValue(t, tree, p); v != 2 {
		t.Fatalf("position should follow swapped contents, got %d", v)
	}
	if got := values(moved); !slices.Equal(got, []int{7}) {
		t.Fatalf("unexpected swapped values %v", got)
	}
}

func TestClearReusesArena(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	var positions []Position
	for k := 0; k < 32; k++ {
		p, _ := tree.Insert(k)
		positions = append(positions, p)
	}
	tree.Clear()
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Begin() != tree.End() {
		t.Fatalf("expected empty tree after Clear")
	}
	for _, p := range positions {
		if tree.Valid(p) {
			t.Fatalf("expected %s to be stale after Clear", p)
		}
	}
	for k := 0; k < 32; k++ {
		tree.Insert(k)
	}
	mustCheck(t, tree)
	if st := tree.Stats(); st.ArenaSlots != 32 || st.FreeSlots != 0 {
		t.Fatalf("expected arena slots to be reused, got %s", st)
	}
}

func TestIterationMayEraseCurrent(t *testing.T) {
	tree := newIntTree(t)
	for k := 0; k < 40; k++ {
		tree.Insert(k)
	}
	for v := range tree.All() {
		if v%2 == 0 {
			tree.EraseUnique(v)
		}
	}
	mustCheck(t, tree)
	if tree.Len() != 20 {
		t.Fatalf("expected 20 odd values to remain, got %d", tree.Len())
	}
	count := 0
	tree.ForEach(func(v int) bool {
		count++
		return v < 9
	})
	if count != 5 {
		t.Fatalf("ForEach should stop after 5 values, visited %d", count)
	}
}

func TestRangeIteration(t *testing.T) {
	tree := newIntTree(t)
	for k := 0; k < 20; k++ {
		tree.InsertUnique(k)
	}
	seq := tree.Range(tree.LowerBound(5), tree.UpperBound(9))
	for range 2 { // a range can be iterated more than once
		if got := slices.Collect(seq); !slices.Equal(got, []int{5, 6, 7, 8, 9}) {
			t.Fatalf("unexpected range %v", got)
		}
	}
	if got := slices.Collect(tree.Range(tree.Find(17), tree.End())); !slices.Equal(got, []int{17, 18, 19}) {
		t.Fatalf("unexpected tail range %v", got)
	}
}

func TestStatsHeightIsLogarithmic(t *testing.T) {
	tree := newIntTree(t)
	const n = 1<<12 - 1
	for k := 0; k < n; k++ {
		tree.Insert(k) // ascending insertion is the worst case for unbalanced trees
	}
	mustCheck(t, tree)
	st := tree.Stats()
	if st.Len != n || st.Red+st.Black != n {
		t.Fatalf("unexpected node counts: %s", st)
	}
	if st.Height > 2*12 {
		t.Fatalf("height %d exceeds 2*log2(n+1)", st.Height)
	}
	if st.BlackHeight < 6 {
		t.Fatalf("black-height %d too small for %d nodes", st.BlackHeight, n)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()

	tree := newIntTree(t)
	for k := 0; k < 16; k++ {
		tree.InsertUnique(k)
	}
	tree.nodes[tree.root].color = Red
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected red root to be reported, got %v", err)
	}
	tree.nodes[tree.root].color = Black
	left := tree.nodes[tree.root].left
	tree.nodes[left].color = 1 - tree.nodes[left].color
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected black-height violation to be reported, got %v", err)
	}
	tree = newIntTree(t)
	for k := 0; k < 16; k++ {
		tree.InsertUnique(k)
	}
	tree.nodes[tree.leftmost].value = 1000
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ordering violation to be reported, got %v", err)
	}
}

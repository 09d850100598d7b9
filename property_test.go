package avl

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzOperations -fuzztime=10s

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]bool) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("length mismatch: got=%d want=%d", tree.Len(), len(model))
	}
	want := make([]int, 0, len(model))
	for x := range model {
		want = append(want, x)
	}
	slices.Sort(want)
	got := slices.Collect(tree.All())
	if !slices.Equal(got, want) {
		t.Fatalf("elements mismatch:\n got=%v\nwant=%v", got, want)
	}
	for _, x := range want {
		if !tree.Contains(x) {
			t.Fatalf("expected tree to contain %d", x)
		}
	}
	// a height-balanced tree with n nodes has height < 1.45·log2(n+2)
	if n := tree.Len(); n > 0 {
		bound := 1
		for size := 1; size < n+2; size *= 2 {
			bound++
		}
		if tree.Height() > bound*3/2 {
			t.Fatalf("tree of %d elements too high: %d", n, tree.Height())
		}
	}
}

func applyOperation(tree *Tree[int], model map[int]bool, op byte, x int) {
	switch op % 4 {
	case 0, 1:
		tree.Insert(x)
		model[x] = true
	case 2:
		tree.Delete(x)
		delete(model, x)
	case 3:
		if min, ok := tree.Min(); ok {
			delete(model, min)
		}
		tree.DeleteMin()
	}
}

func TestRandomizedProperty(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		tree := NewOrdered[int]()
		model := make(map[int]bool)
		for step := 0; step < 400; step++ {
			op := byte(r.Intn(4))
			x := r.Intn(100)
			applyOperation(tree, model, op, x)
			if step%20 == 0 {
				assertTreeMatchesModel(t, tree, model)
			}
		}
		assertTreeMatchesModel(t, tree, model)
		for !tree.IsEmpty() {
			tree.DeleteMin()
		}
		if tree.Len() != 0 || tree.Height() != 0 {
			t.Fatalf("seed %d: draining tree left len=%d height=%d", seed, tree.Len(), tree.Height())
		}
	}
}

func TestSequentialInsertHeights(t *testing.T) {
	// worst case for an unbalanced tree: ascending input
	for n := 1; n <= 1024; n *= 2 {
		tree := NewOrdered[int]()
		for x := range n - 1 {
			tree.Insert(x)
		}
		want := 0
		for size := 1; size < n; size *= 2 {
			want++
		}
		if tree.Height() != want {
			t.Errorf("inserting 0…%d ascending: height=%d, want %d", n-2, tree.Height(), want)
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{0, 5, 0, 3, 0, 8, 2, 5, 3, 0})
	f.Add([]byte{0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7})
	f.Add([]byte{1, 2, 1, 1, 1, 3, 2, 2})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := NewOrdered[int]()
		model := make(map[int]bool)
		for i := 0; i+1 < len(ops); i += 2 {
			applyOperation(tree, model, ops[i], int(ops[i+1]%64))
		}
		assertTreeMatchesModel(t, tree, model)
	})
}

package bst

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./bst -run TestRandomizedOrdering -count=1
//   - Fuzz test:
//     go test ./bst -run '^$' -fuzz FuzzTreeModel -fuzztime=10s

func runTreeModel(t *testing.T, r *rand.Rand, steps int) {
	t.Helper()
	tree := NewOrdered[int, int]()
	model := map[int]int{}
	for step := range steps {
		k := r.Intn(64)
		if r.Intn(3) == 0 {
			v, ok := tree.Delete(k)
			want, present := model[k]
			if ok != present || (ok && v != want) {
				t.Fatalf("step %d: Delete(%d) = %d/%v, want %d/%v", step, k, v, ok, want, present)
			}
			delete(model, k)
		} else {
			v := r.Int()
			_, present := model[k]
			if replaced := tree.Insert(k, v); replaced != present {
				t.Fatalf("step %d: Insert(%d) replaced=%v, want %v", step, k, replaced, present)
			}
			model[k] = v
		}
		if tree.Len() != len(model) {
			t.Fatalf("step %d: len %d, want %d", step, tree.Len(), len(model))
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
	in := tree.Inorder()
	for i := 1; i < len(in); i++ {
		if in[i-1].Key >= in[i].Key {
			t.Fatalf("in-order keys not ascending at %d: %v", i, in)
		}
	}
	for _, e := range in {
		if model[e.Key] != e.Value {
			t.Fatalf("entry %v does not match model value %d", e, model[e.Key])
		}
	}
	sameEntries(t, in, tree.Preorder())
	sameEntries(t, in, tree.Postorder())
}

// sameEntries checks that a traversal visits exactly the entries of the
// in-order traversal.
func sameEntries(t *testing.T, inorder, other []Entry[int, int]) {
	t.Helper()
	if len(other) != len(inorder) {
		t.Fatalf("traversal length mismatch: %d != %d", len(other), len(inorder))
	}
	sorted := slices.Clone(other)
	slices.SortFunc(sorted, func(a, b Entry[int, int]) int { return a.Key - b.Key })
	if !slices.Equal(sorted, inorder) {
		t.Fatalf("traversal entries differ from in-order entries")
	}
}

func TestRandomizedOrdering(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		r := rand.New(rand.NewSource(seed))
		runTreeModel(t, r, 400)
	}
}

func TestSkewedTree(t *testing.T) {
	tree := NewOrdered[int, struct{}]()
	const n = 10000
	for i := range n {
		tree.Insert(i, struct{}{})
	}
	if tree.Height() != n {
		t.Errorf("sorted inserts should produce a degenerated tree of height %d, is %d", n, tree.Height())
	}
	if _, ok := tree.Search(n - 1); !ok {
		t.Errorf("deepest key not found")
	}
	if len(tree.Inorder()) != n {
		t.Errorf("traversal lost entries")
	}
}

func FuzzTreeModel(f *testing.F) {
	f.Add(int64(7), uint16(100))
	f.Add(int64(99), uint16(900))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		r := rand.New(rand.NewSource(seed))
		runTreeModel(t, r, int(steps%1000))
	})
}

package avl

import (
	"math/rand"
	"testing"
)

func BenchmarkInsertAscending(b *testing.B) {
	for b.Loop() {
		tree := NewOrdered[int]()
		for x := range 1000 {
			tree.Insert(x)
		}
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	input := r.Perm(1000)
	for b.Loop() {
		tree := NewOrdered[int]()
		for _, x := range input {
			tree.Insert(x)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	tree := NewOrdered[int]()
	for x := range 10000 {
		tree.Insert(x)
	}
	i := 0
	for b.Loop() {
		_ = tree.Contains(i % 20000)
		i++
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	tree := NewOrdered[int]()
	for x := range 1000 {
		tree.Insert(x)
	}
	i := 0
	for b.Loop() {
		tree.Delete(i % 1000)
		tree.Insert(i % 1000)
		i++
	}
}

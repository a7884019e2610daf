package csp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitSetBasics(t *testing.T) {
	tests := []struct {
		name   string
		build  func() BitSet
		want   []int
		hasNot []int
	}{
		{
			name:   "full range",
			build:  func() BitSet { return NewBitSet(5) },
			want:   []int{1, 2, 3, 4, 5},
			hasNot: []int{0, 6},
		},
		{
			name:   "from values ignores out of range",
			build:  func() BitSet { return NewBitSetFromValues(4, []int{2, 4, 9, -1}) },
			want:   []int{2, 4},
			hasNot: []int{1, 3, 9},
		},
		{
			name:   "crosses word boundary",
			build:  func() BitSet { return NewBitSetFromValues(130, []int{1, 64, 65, 128, 130}) },
			want:   []int{1, 64, 65, 128, 130},
			hasNot: []int{2, 63, 66, 129},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if diff := cmp.Diff(tt.want, b.Values()); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
			if b.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", b.Count(), len(tt.want))
			}
			for _, v := range tt.want {
				if !b.Has(v) {
					t.Errorf("Has(%d) = false, want true", v)
				}
			}
			for _, v := range tt.hasNot {
				if b.Has(v) {
					t.Errorf("Has(%d) = true, want false", v)
				}
			}
		})
	}
}

func TestBitSetCloneIsIndependent(t *testing.T) {
	b := NewBitSet(9)
	c := b.Clone()
	c.remove(5)
	if !b.Has(5) {
		t.Fatal("mutating a clone changed the original")
	}
	if c.Has(5) {
		t.Fatal("remove on clone had no effect")
	}
	if b.Equal(c) {
		t.Fatal("Equal reported differing sets as equal")
	}
}

func TestDomainStoreRemoveAndRestore(t *testing.T) {
	ds := NewDomainStore([]BitSet{NewBitSet(3), NewBitSet(3), NewBitSet(3)})

	before := make([][]int, ds.NumVars())
	for v := range before {
		before[v] = ds.Values(v)
	}

	mark := ds.Snapshot()
	if !ds.Remove(0, 2) {
		t.Fatal("Remove(0, 2) reported no removal")
	}
	if ds.Remove(0, 2) {
		t.Fatal("second Remove(0, 2) reported a removal")
	}
	ds.Remove(1, 1)
	ds.Remove(1, 2)
	ds.Remove(1, 3)

	if !ds.Empty(1) {
		t.Errorf("variable 1 should be wiped out, has %v", ds.Values(1))
	}
	if got := ds.Values(0); len(got) != 2 {
		t.Errorf("variable 0 domain = %v, want 2 values", got)
	}

	ds.RestoreTo(mark)
	for v := range before {
		if diff := cmp.Diff(before[v], ds.Values(v)); diff != "" {
			t.Errorf("variable %d not restored exactly (-want +got):\n%s", v, diff)
		}
	}
}

func TestDomainStoreNestedSnapshots(t *testing.T) {
	ds := NewDomainStore([]BitSet{NewBitSet(4)})

	outer := ds.Snapshot()
	ds.Remove(0, 1)
	inner := ds.Snapshot()
	ds.Remove(0, 2)
	ds.Remove(0, 3)

	ds.RestoreTo(inner)
	if diff := cmp.Diff([]int{2, 3, 4}, ds.Values(0)); diff != "" {
		t.Errorf("inner restore mismatch (-want +got):\n%s", diff)
	}

	ds.RestoreTo(outer)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, ds.Values(0)); diff != "" {
		t.Errorf("outer restore mismatch (-want +got):\n%s", diff)
	}
}

func TestDomainStoreDoesNotAliasInitialDomains(t *testing.T) {
	initial := []BitSet{NewBitSet(3)}
	ds := NewDomainStore(initial)
	ds.Remove(0, 1)
	if !initial[0].Has(1) {
		t.Fatal("store mutation leaked into the caller's domains")
	}
}

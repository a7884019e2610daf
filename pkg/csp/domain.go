package csp

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet is a fixed-capacity set of 1-based integer values backed by
// uint64 words. Bit i of the word array represents value i+1, giving O(1)
// membership tests and compact storage for the dense value ranges that
// color ids and placement ids occupy.
type BitSet struct {
	n     int // values range over [1, n]
	words []uint64
}

// NewBitSet creates a set containing every value from 1 to n inclusive.
func NewBitSet(n int) BitSet {
	if n <= 0 {
		return BitSet{}
	}
	b := BitSet{n: n, words: make([]uint64, (n+63)/64)}
	for v := 1; v <= n; v++ {
		b.add(v)
	}
	return b
}

// NewBitSetFromValues creates a set containing only the given values.
// Values outside [1, n] are ignored.
func NewBitSetFromValues(n int, values []int) BitSet {
	if n <= 0 {
		return BitSet{}
	}
	b := BitSet{n: n, words: make([]uint64, (n+63)/64)}
	for _, v := range values {
		if v >= 1 && v <= n {
			b.add(v)
		}
	}
	return b
}

func (b *BitSet) add(v int) {
	b.words[(v-1)/64] |= 1 << uint((v-1)%64)
}

func (b *BitSet) remove(v int) {
	b.words[(v-1)/64] &^= 1 << uint((v-1)%64)
}

// Has returns true if the set contains v.
func (b BitSet) Has(v int) bool {
	if v < 1 || v > b.n {
		return false
	}
	return (b.words[(v-1)/64]>>uint((v-1)%64))&1 == 1
}

// Count returns the number of values in the set.
func (b BitSet) Count() int {
	cnt := 0
	for _, w := range b.words {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

// MaxValue returns the capacity bound: values range over [1, MaxValue].
func (b BitSet) MaxValue() int { return b.n }

// IterateValues calls f for each value in the set in ascending order.
// The set must not be mutated during iteration.
func (b BitSet) IterateValues(f func(v int)) {
	for i, w := range b.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w) + 1)
			w &^= low
		}
	}
}

// Values returns the set contents as an ascending slice.
func (b BitSet) Values() []int {
	vals := make([]int, 0, b.Count())
	b.IterateValues(func(v int) { vals = append(vals, v) })
	return vals
}

// Clone returns an independent copy of the set.
func (b BitSet) Clone() BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return BitSet{n: b.n, words: words}
}

// Equal returns true if both sets contain exactly the same values.
func (b BitSet) Equal(other BitSet) bool {
	if b.n != other.n {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String renders the set as "{1,3,5}".
func (b BitSet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	b.IterateValues(func(v int) {
		if !first {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%d", v)
		first = false
	})
	sb.WriteString("}")
	return sb.String()
}

// removal is one undo-trail entry: value val was removed from variable v.
type removal struct {
	v   int
	val int
}

// DomainStore holds the current candidate set of every variable and an
// undo trail of single-value removals. Domains shrink monotonically along
// a search path; RestoreTo replays the trail backwards so that sibling
// branches always start from exactly the state their parent saw. Domains
// are never recomputed from scratch.
type DomainStore struct {
	domains []BitSet
	trail   []removal
}

// NewDomainStore creates a store owning independent copies of the given
// initial domains.
func NewDomainStore(initial []BitSet) *DomainStore {
	domains := make([]BitSet, len(initial))
	for i, d := range initial {
		domains[i] = d.Clone()
	}
	return &DomainStore{domains: domains, trail: make([]removal, 0, 256)}
}

// NumVars returns the number of variables in the store.
func (s *DomainStore) NumVars() int { return len(s.domains) }

// Has returns true if val is currently in the domain of v.
func (s *DomainStore) Has(v, val int) bool { return s.domains[v].Has(val) }

// Count returns the current domain size of v.
func (s *DomainStore) Count(v int) int { return s.domains[v].Count() }

// Empty returns true if the domain of v has been wiped out.
func (s *DomainStore) Empty(v int) bool { return s.domains[v].Count() == 0 }

// Values returns the current domain of v in ascending order.
func (s *DomainStore) Values(v int) []int { return s.domains[v].Values() }

// IterateValues calls f for each value currently in the domain of v, in
// ascending order. The domain must not be mutated during iteration.
func (s *DomainStore) IterateValues(v int, f func(val int)) {
	s.domains[v].IterateValues(f)
}

// Remove deletes val from the domain of v and records the removal on the
// trail. Returns true if a removal actually occurred.
func (s *DomainStore) Remove(v, val int) bool {
	if !s.domains[v].Has(val) {
		return false
	}
	s.domains[v].remove(val)
	s.trail = append(s.trail, removal{v: v, val: val})
	return true
}

// Snapshot returns a mark identifying the current trail position. Pass it
// to RestoreTo to undo every removal made after this point.
func (s *DomainStore) Snapshot() int { return len(s.trail) }

// RestoreTo undoes all removals recorded after mark, newest first,
// returning every domain to exactly the state it had at Snapshot time.
func (s *DomainStore) RestoreTo(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		r := s.trail[i]
		s.domains[r.v].add(r.val)
	}
	s.trail = s.trail[:mark]
}

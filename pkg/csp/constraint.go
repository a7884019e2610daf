package csp

import (
	"sort"
)

// Arc is a directed variable pair. Constraints are declared per unordered
// pair but stored as two directed arcs so that AC-3 can process each
// direction independently.
type Arc struct {
	Xi int
	Xj int
}

// ValuePair is one allowed value combination for a directed arc: Vi for
// the arc's source variable, Vj for its target.
type ValuePair struct {
	Vi int
	Vj int
}

// ConstraintStore holds, per directed arc, the hash set of allowed value
// pairs, plus a neighbor cache derived from the arcs. Arcs are compiled
// once during model construction and never mutated afterwards.
//
// Invariant: whenever arc (i,j) is present, so is (j,i), and the two
// tables are exact transposes of the same relation.
type ConstraintStore struct {
	nVars     int
	allowed   map[Arc]map[ValuePair]struct{}
	neighbors []map[int]struct{}
	arcs      []Arc // insertion order, for deterministic AC-3 seeding

	sorted [][]int // lazily built sorted neighbor slices
}

func newConstraintStore(nVars int) *ConstraintStore {
	ns := make([]map[int]struct{}, nVars)
	for i := range ns {
		ns[i] = make(map[int]struct{})
	}
	return &ConstraintStore{
		nVars:     nVars,
		allowed:   make(map[Arc]map[ValuePair]struct{}),
		neighbors: ns,
	}
}

// addDirected merges pairs into the table for arc (i,j), creating the arc
// if it does not exist yet.
func (cs *ConstraintStore) addDirected(i, j int, pairs []ValuePair) {
	a := Arc{Xi: i, Xj: j}
	table, ok := cs.allowed[a]
	if !ok {
		table = make(map[ValuePair]struct{}, len(pairs))
		cs.allowed[a] = table
		cs.arcs = append(cs.arcs, a)
	}
	for _, p := range pairs {
		table[p] = struct{}{}
	}
	cs.neighbors[i][j] = struct{}{}
	cs.neighbors[j][i] = struct{}{}
	cs.sorted = nil
}

// Compatible reports whether assigning vi to i and vj to j satisfies the
// constraint on arc (i,j). Absence of a constraint is vacuously
// compatible. This is the innermost operation of both search and AC-3, so
// it is a single hash lookup.
func (cs *ConstraintStore) Compatible(i, vi, j, vj int) bool {
	table, ok := cs.allowed[Arc{Xi: i, Xj: j}]
	if !ok {
		return true
	}
	_, ok = table[ValuePair{Vi: vi, Vj: vj}]
	return ok
}

// Constrained reports whether any constraint exists on arc (i,j).
func (cs *ConstraintStore) Constrained(i, j int) bool {
	_, ok := cs.allowed[Arc{Xi: i, Xj: j}]
	return ok
}

// Neighbors returns the variables constrained against i, ascending.
func (cs *ConstraintStore) Neighbors(i int) []int {
	if cs.sorted == nil {
		cs.sorted = make([][]int, cs.nVars)
		for v := range cs.neighbors {
			ns := make([]int, 0, len(cs.neighbors[v]))
			for nb := range cs.neighbors[v] {
				ns = append(ns, nb)
			}
			sort.Ints(ns)
			cs.sorted[v] = ns
		}
	}
	return cs.sorted[i]
}

// Degree returns the number of variables constrained against i.
func (cs *ConstraintStore) Degree(i int) int { return len(cs.neighbors[i]) }

// Arcs returns every directed arc in declaration order.
func (cs *ConstraintStore) Arcs() []Arc { return cs.arcs }

package csp

// AC-3 arc consistency. The worklist holds directed arcs; popping (Xi,Xj)
// runs revise, and whenever revise shrinks the domain of Xi, every arc
// (Xk,Xi) with Xk a neighbor of Xi other than Xj is re-enqueued.
// Termination: each removal strictly shrinks a finite domain and arcs are
// only re-enqueued after a removal.
//
// A wiped-out domain is a normal dead-branch signal, reported as false,
// never as an error.

// fullQueue seeds the worklist with every constraint arc, in declaration
// order. Used for whole-problem preprocessing.
func fullQueue(cs *ConstraintStore) []Arc {
	arcs := cs.Arcs()
	q := make([]Arc, len(arcs))
	copy(q, arcs)
	return q
}

// incidentQueue seeds the worklist with the arcs pointing at xi from each
// of its neighbors. Used after assigning xi during search: only domains
// that can see the newly fixed value need revising initially.
func incidentQueue(cs *ConstraintStore, xi int) []Arc {
	ns := cs.Neighbors(xi)
	q := make([]Arc, 0, len(ns))
	for _, xk := range ns {
		q = append(q, Arc{Xi: xk, Xj: xi})
	}
	return q
}

// ac3 drains the worklist until a fixpoint or a domain wipeout. Returns
// false on wipeout. All removals go through the domain store's trail, so
// the caller can undo the entire run with a single RestoreTo.
func ac3(cs *ConstraintStore, ds *DomainStore, queue []Arc, st *Stats) bool {
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !revise(cs, ds, a.Xi, a.Xj, st) {
			continue
		}
		if ds.Empty(a.Xi) {
			return false
		}
		for _, xk := range cs.Neighbors(a.Xi) {
			if xk != a.Xj {
				queue = append(queue, Arc{Xi: xk, Xj: a.Xi})
			}
		}
	}
	return true
}

// revise removes from the domain of xi every value with no supporting
// value in the domain of xj. Returns true if anything was removed.
// Arcs without a constraint table revise nothing.
func revise(cs *ConstraintStore, ds *DomainStore, xi, xj int, st *Stats) bool {
	if st != nil {
		st.Revisions++
	}
	if !cs.Constrained(xi, xj) {
		return false
	}
	removed := false
	// Iterate over a snapshot: the domain is mutated inside the loop.
	for _, vi := range ds.Values(xi) {
		supported := false
		ds.IterateValues(xj, func(vj int) {
			if !supported && cs.Compatible(xi, vi, xj, vj) {
				supported = true
			}
		})
		if !supported {
			ds.Remove(xi, vi)
			removed = true
			if st != nil {
				st.Removals++
			}
		}
	}
	return removed
}

package csp

import (
	"context"

	"github.com/rs/zerolog"
)

// Options selects the heuristics and inference used by Solve. The zero
// value is plain chronological backtracking: lowest-index variable order,
// ascending value order, no propagation.
type Options struct {
	// UseMRV selects the unassigned variable with the fewest remaining
	// domain values.
	UseMRV bool
	// UseDegree breaks MRV ties by the number of unassigned neighbors
	// (or ranks by it alone when UseMRV is off).
	UseDegree bool
	// UseLCV orders candidate values by how few neighbor options they
	// eliminate.
	UseLCV bool
	// UseAC3 runs incremental arc consistency after every assignment.
	UseAC3 bool
	// AC3Preprocess runs one full arc-consistency pass before search.
	AC3Preprocess bool

	// Logger receives debug-level search tracing. Nil disables logging.
	Logger *zerolog.Logger
	// Stats, when non-nil, is filled with counters for this solve.
	Stats *Stats
}

// DefaultOptions enables every heuristic and AC-3, the strongest standard
// configuration. Heuristics and inference change performance only, never
// which problems are solvable.
func DefaultOptions() Options {
	return Options{UseMRV: true, UseDegree: true, UseLCV: true, UseAC3: true, AC3Preprocess: true}
}

// Stats counts the work done by one Solve call.
type Stats struct {
	// Nodes is the number of tentative assignments made.
	Nodes int
	// Backtracks is the number of assignments undone.
	Backtracks int
	// Revisions is the number of AC-3 revise calls.
	Revisions int
	// Removals is the number of values pruned by AC-3.
	Removals int
}

// Assignment maps each variable index to its committed value. Zero means
// unassigned; Solve only ever returns complete assignments, so every
// entry of a returned Assignment is positive.
type Assignment []int

// Complete reports whether every variable has a value.
func (a Assignment) Complete() bool {
	for _, v := range a {
		if v == 0 {
			return false
		}
	}
	return true
}

// search carries the state of one in-flight Solve call. The domain store
// and constraint store are exclusively owned by this call; nothing
// survives it except the returned assignment.
type search struct {
	n        int
	cs       *ConstraintStore
	ds       *DomainStore
	opts     Options
	assigned []bool
	values   Assignment
	stats    *Stats
	log      zerolog.Logger
}

// Solve runs backtracking search and returns the first complete,
// consistent assignment, or nil if the problem is unsatisfiable.
// Unsatisfiability is an ordinary result, not an error; the error return
// is reserved for malformed models and context cancellation.
func (m *Model) Solve(ctx context.Context, opts Options) (Assignment, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	st := opts.Stats
	if st == nil {
		st = &Stats{}
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	s := &search{
		n:        len(m.domains),
		cs:       m.constraints,
		ds:       NewDomainStore(m.domains),
		opts:     opts,
		assigned: make([]bool, len(m.domains)),
		values:   make(Assignment, len(m.domains)),
		stats:    st,
		log:      log,
	}

	if opts.AC3Preprocess {
		if !ac3(s.cs, s.ds, fullQueue(s.cs), s.stats) {
			log.Debug().Int("removals", st.Removals).Msg("preprocessing wiped out a domain, problem unsatisfiable")
			return nil, nil
		}
		log.Debug().Int("removals", st.Removals).Msg("arc-consistency preprocessing done")
	}

	found, err := s.run(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Debug().Int("nodes", st.Nodes).Int("backtracks", st.Backtracks).Msg("search exhausted, no solution")
		return nil, nil
	}
	log.Debug().Int("nodes", st.Nodes).Int("backtracks", st.Backtracks).Msg("solution found")
	out := make(Assignment, len(s.values))
	copy(out, s.values)
	return out, nil
}

// run is the chronological backtracking loop. It returns true as soon as
// one complete assignment is found (first-solution semantics); a false
// return means every candidate value at this depth failed and the caller
// must undo its own assignment.
func (s *search) run(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	v := s.selectVariable()
	if v == -1 {
		return true, nil // all variables assigned
	}
	for _, val := range s.orderValues(v) {
		if !s.consistent(v, val) {
			continue
		}
		mark := s.ds.Snapshot()
		s.assign(v, val)
		s.stats.Nodes++

		ok := true
		if s.opts.UseAC3 {
			ok = ac3(s.cs, s.ds, incidentQueue(s.cs, v), s.stats)
		}
		if ok {
			found, err := s.run(ctx)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
		s.ds.RestoreTo(mark)
		s.unassign(v)
		s.stats.Backtracks++
	}
	return false, nil
}

// consistent checks v=val against every already-assigned neighbor. The
// constraint store keeps both directed arcs as transposes, so checking
// the (v, nb) direction covers the relation.
func (s *search) consistent(v, val int) bool {
	for _, nb := range s.cs.Neighbors(v) {
		if !s.assigned[nb] {
			continue
		}
		if !s.cs.Compatible(v, val, nb, s.values[nb]) {
			return false
		}
	}
	return true
}

// assign commits v=val and narrows the domain of v to the singleton
// {val}, logging the removals so RestoreTo can rebuild the exact domain.
// The narrowing is what lets incremental AC-3 see the assignment.
func (s *search) assign(v, val int) {
	s.assigned[v] = true
	s.values[v] = val
	for _, other := range s.ds.Values(v) {
		if other != val {
			s.ds.Remove(v, other)
		}
	}
}

func (s *search) unassign(v int) {
	s.assigned[v] = false
	s.values[v] = 0
}

package csp

import "sort"

// Variable and value ordering. All tie-breaks are fixed (lowest variable
// index, ascending value) so that every run of the solver on the same
// model and options visits the same search tree.

// selectVariable picks the next unassigned variable.
//
// With MRV enabled the variable with the fewest remaining domain values
// wins; ties fall to the degree heuristic when it is enabled (most
// unassigned neighbors), then to the lowest index. Degree without MRV
// ranks by unassigned-neighbor count alone. With neither enabled the
// lowest-index unassigned variable is chosen.
func (s *search) selectVariable() int {
	best := -1
	bestCount := 0
	bestDegree := 0
	for v := 0; v < s.n; v++ {
		if s.assigned[v] {
			continue
		}
		if !s.opts.UseMRV && !s.opts.UseDegree {
			return v
		}
		count := s.ds.Count(v)
		degree := 0
		if s.opts.UseDegree {
			degree = s.unassignedDegree(v)
		}
		if best == -1 {
			best, bestCount, bestDegree = v, count, degree
			continue
		}
		switch {
		case s.opts.UseMRV && count < bestCount:
			best, bestCount, bestDegree = v, count, degree
		case s.opts.UseMRV && count > bestCount:
			// keep current best
		case s.opts.UseDegree && degree > bestDegree:
			best, bestCount, bestDegree = v, count, degree
		}
	}
	return best
}

// unassignedDegree counts the neighbors of v not yet assigned.
func (s *search) unassignedDegree(v int) int {
	degree := 0
	for _, nb := range s.cs.Neighbors(v) {
		if !s.assigned[nb] {
			degree++
		}
	}
	return degree
}

// orderValues returns the candidate values of v in the order to try.
//
// Without LCV this is the domain's ascending iteration order. With LCV,
// values are sorted by how many values they would eliminate from the
// domains of unassigned neighbors, fewest first; the sort is stable over
// an ascending base list, so ties stay in ascending value order.
func (s *search) orderValues(v int) []int {
	values := s.ds.Values(v)
	if !s.opts.UseLCV || len(values) <= 1 {
		return values
	}
	scores := make(map[int]int, len(values))
	for _, val := range values {
		scores[val] = s.lcvScore(v, val)
	}
	sort.SliceStable(values, func(a, b int) bool {
		return scores[values[a]] < scores[values[b]]
	})
	return values
}

// lcvScore counts how many neighbor values assigning v=val would rule out
// across all unassigned neighbors of v.
func (s *search) lcvScore(v, val int) int {
	score := 0
	for _, nb := range s.cs.Neighbors(v) {
		if s.assigned[nb] {
			continue
		}
		s.ds.IterateValues(nb, func(nbVal int) {
			if !s.cs.Compatible(v, val, nb, nbVal) {
				score++
			}
		})
	}
	return score
}

package csp

import "testing"

// triangle builds three mutually-adjacent variables over colors 1..k.
// Not 2-colorable, 3-colorable.
func triangle(t *testing.T, k int) *Model {
	t.Helper()
	m := NewModel()
	colors := make([]int, k)
	for i := range colors {
		colors[i] = i + 1
	}
	for i := 0; i < 3; i++ {
		v := m.NewVar()
		if err := m.SetDomain(v, colors); err != nil {
			t.Fatalf("SetDomain(%d): %v", v, err)
		}
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if err := m.AddAllDiff(e[0], e[1]); err != nil {
			t.Fatalf("AddAllDiff(%d,%d): %v", e[0], e[1], err)
		}
	}
	return m
}

// checkSound verifies every constraint arc against a complete assignment.
func checkSound(t *testing.T, m *Model, a Assignment) {
	t.Helper()
	if a == nil {
		t.Fatal("checkSound called with nil assignment")
	}
	if !a.Complete() {
		t.Fatalf("assignment incomplete: %v", a)
	}
	for _, arc := range m.Arcs() {
		if !m.Compatible(arc.Xi, a[arc.Xi], arc.Xj, a[arc.Xj]) {
			t.Errorf("arc (%d,%d) violated by %d=%d, %d=%d",
				arc.Xi, arc.Xj, arc.Xi, a[arc.Xi], arc.Xj, a[arc.Xj])
		}
	}
}

// domainSnapshot captures every current domain of a store.
func domainSnapshot(ds *DomainStore) [][]int {
	snap := make([][]int, ds.NumVars())
	for v := range snap {
		snap[v] = ds.Values(v)
	}
	return snap
}

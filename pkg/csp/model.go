package csp

import (
	"errors"
	"fmt"
)

// Construction errors. Malformed input is reported synchronously while the
// model is being built; search-time dead ends are never errors.
var (
	ErrVariableRange    = errors.New("variable index out of range")
	ErrSelfArc          = errors.New("constraint references a variable against itself")
	ErrEmptyDomain      = errors.New("domain must be non-empty")
	ErrNonPositiveValue = errors.New("domain values must be positive")
	ErrNoDomain         = errors.New("variable has no domain")
	ErrValueOutOfDomain = errors.New("allowed pair references a value outside the declared domain")
)

// Model is the data contract between encoders and the solver: a set of
// variables, one declared domain per variable, and binary constraints as
// explicit allowed-pair relations. Any encoder that produces this contract
// can be solved; the solver is polymorphic only over the contract, never
// over encoder identity.
//
// A Model is built once and may then be solved any number of times; each
// Solve call works on its own copy of the declared domains, so repeated
// calls with different options are independent.
type Model struct {
	domains     []BitSet
	constraints *ConstraintStore
}

// NewModel creates an empty model. Add variables with NewVar, give each a
// domain with SetDomain, then declare constraints.
func NewModel() *Model {
	return &Model{constraints: newConstraintStore(0)}
}

// NewVar adds a variable and returns its index. The variable has no
// domain until SetDomain is called.
func (m *Model) NewVar() int {
	m.domains = append(m.domains, BitSet{})
	m.constraints.neighbors = append(m.constraints.neighbors, make(map[int]struct{}))
	m.constraints.nVars++
	m.constraints.sorted = nil
	return len(m.domains) - 1
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int { return len(m.domains) }

// SetDomain declares the domain of v. Values must be positive and the set
// must be non-empty; an empty domain at construction is caller error, not
// a search outcome.
func (m *Model) SetDomain(v int, values []int) error {
	if v < 0 || v >= len(m.domains) {
		return fmt.Errorf("%w: %d", ErrVariableRange, v)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: variable %d", ErrEmptyDomain, v)
	}
	maxVal := 0
	for _, val := range values {
		if val < 1 {
			return fmt.Errorf("%w: variable %d value %d", ErrNonPositiveValue, v, val)
		}
		if val > maxVal {
			maxVal = val
		}
	}
	m.domains[v] = NewBitSetFromValues(maxVal, values)
	return nil
}

// Domain returns the declared domain of v in ascending order.
func (m *Model) Domain(v int) []int { return m.domains[v].Values() }

// AddConstraint registers a symmetric binary relation between i and j.
// pairs lists the allowed (vi, vj) combinations reading the arc as (i, j);
// the transposed table is installed for arc (j, i) automatically. Calling
// AddConstraint twice for the same pair unions the relations.
//
// Every pair value must belong to the declared domain of its variable.
func (m *Model) AddConstraint(i, j int, pairs []ValuePair) error {
	if err := m.checkArc(i, j); err != nil {
		return err
	}
	for _, p := range pairs {
		if !m.domains[i].Has(p.Vi) {
			return fmt.Errorf("%w: variable %d value %d", ErrValueOutOfDomain, i, p.Vi)
		}
		if !m.domains[j].Has(p.Vj) {
			return fmt.Errorf("%w: variable %d value %d", ErrValueOutOfDomain, j, p.Vj)
		}
	}
	reversed := make([]ValuePair, len(pairs))
	for k, p := range pairs {
		reversed[k] = ValuePair{Vi: p.Vj, Vj: p.Vi}
	}
	m.constraints.addDirected(i, j, pairs)
	m.constraints.addDirected(j, i, reversed)
	return nil
}

// AddAllDiff registers the standard inequality constraint between i and j:
// every (vi, vj) with vi != vj, drawn from the declared domains.
func (m *Model) AddAllDiff(i, j int) error {
	if err := m.checkArc(i, j); err != nil {
		return err
	}
	var pairs []ValuePair
	m.domains[i].IterateValues(func(vi int) {
		m.domains[j].IterateValues(func(vj int) {
			if vi != vj {
				pairs = append(pairs, ValuePair{Vi: vi, Vj: vj})
			}
		})
	})
	return m.AddConstraint(i, j, pairs)
}

func (m *Model) checkArc(i, j int) error {
	if i < 0 || i >= len(m.domains) {
		return fmt.Errorf("%w: %d", ErrVariableRange, i)
	}
	if j < 0 || j >= len(m.domains) {
		return fmt.Errorf("%w: %d", ErrVariableRange, j)
	}
	if i == j {
		return fmt.Errorf("%w: %d", ErrSelfArc, i)
	}
	if m.domains[i].Count() == 0 {
		return fmt.Errorf("%w: variable %d", ErrNoDomain, i)
	}
	if m.domains[j].Count() == 0 {
		return fmt.Errorf("%w: variable %d", ErrNoDomain, j)
	}
	return nil
}

// Compatible reports whether (i=vi, j=vj) satisfies the constraint on arc
// (i, j). Unconstrained pairs are vacuously compatible.
func (m *Model) Compatible(i, vi, j, vj int) bool {
	return m.constraints.Compatible(i, vi, j, vj)
}

// Neighbors returns the variables constrained against i, ascending.
func (m *Model) Neighbors(i int) []int { return m.constraints.Neighbors(i) }

// Arcs returns every directed constraint arc in declaration order.
func (m *Model) Arcs() []Arc { return m.constraints.Arcs() }

// validate checks that every variable received a domain. Called by Solve
// so that a forgotten SetDomain surfaces as a construction error rather
// than a bogus "no solution".
func (m *Model) validate() error {
	for v := range m.domains {
		if m.domains[v].Count() == 0 {
			return fmt.Errorf("%w: variable %d", ErrNoDomain, v)
		}
	}
	return nil
}

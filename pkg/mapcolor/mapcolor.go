// Package mapcolor encodes map-coloring problems for the csp solver: one
// variable per region, color ids as values, and an inequality relation
// compiled into allowed pairs for every adjacent region pair.
package mapcolor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arcsat/arcsat/pkg/csp"
)

var (
	ErrNoRegions       = errors.New("at least one region is required")
	ErrNoColors        = errors.New("at least one color is required")
	ErrDuplicateRegion = errors.New("duplicate region name")
	ErrUnknownRegion   = errors.New("edge references unknown region")
)

// Problem describes a map-coloring instance in human-friendly terms.
type Problem struct {
	Regions []string
	Edges   [][2]string
	Colors  []string
}

// Encoding holds the name <-> id tables needed to decode a solution.
// Region i is variable i; color k (0-based in Colors) is value k+1.
type Encoding struct {
	regions []string
	colors  []string
	index   map[string]int
}

// RegionVar returns the variable index for a region name, or -1.
func (e *Encoding) RegionVar(name string) int {
	if i, ok := e.index[name]; ok {
		return i
	}
	return -1
}

// ColorName returns the color name for a solver value.
func (e *Encoding) ColorName(val int) string { return e.colors[val-1] }

// Decode maps a complete assignment back to region -> color names.
func (e *Encoding) Decode(a csp.Assignment) map[string]string {
	out := make(map[string]string, len(e.regions))
	for i, name := range e.regions {
		out[name] = e.ColorName(a[i])
	}
	return out
}

// Render formats a decoded solution as one "region : color" line per
// region, sorted by region name.
func (e *Encoding) Render(a csp.Assignment) string {
	named := e.Decode(a)
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, n := range names {
		fmt.Fprintf(&sb, "%4s : %s\n", n, named[n])
	}
	return sb.String()
}

// Build compiles a Problem into a csp.Model plus the Encoding needed to
// decode its solutions. Every undirected edge becomes an inequality
// constraint over the color ids.
func Build(p Problem) (*csp.Model, *Encoding, error) {
	if len(p.Regions) == 0 {
		return nil, nil, ErrNoRegions
	}
	if len(p.Colors) == 0 {
		return nil, nil, ErrNoColors
	}
	enc := &Encoding{
		regions: append([]string(nil), p.Regions...),
		colors:  append([]string(nil), p.Colors...),
		index:   make(map[string]int, len(p.Regions)),
	}
	for i, name := range p.Regions {
		if _, dup := enc.index[name]; dup {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, name)
		}
		enc.index[name] = i
	}

	colorIDs := make([]int, len(p.Colors))
	for k := range p.Colors {
		colorIDs[k] = k + 1
	}

	m := csp.NewModel()
	for range p.Regions {
		v := m.NewVar()
		if err := m.SetDomain(v, colorIDs); err != nil {
			return nil, nil, err
		}
	}
	for _, edge := range p.Edges {
		i, ok := enc.index[edge[0]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRegion, edge[0])
		}
		j, ok := enc.index[edge[1]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRegion, edge[1])
		}
		if i == j {
			continue // self-loops carry no constraint
		}
		if err := m.AddAllDiff(i, j); err != nil {
			return nil, nil, err
		}
	}
	return m, enc, nil
}

// Australia returns the classic 7-region map of Australia. Tasmania has
// no land borders, so any color works for it. Pass color names to
// override the default red/green/blue palette.
func Australia(colors ...string) Problem {
	if len(colors) == 0 {
		colors = []string{"red", "green", "blue"}
	}
	return Problem{
		Regions: []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"},
		Edges: [][2]string{
			{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
			{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
			{"NSW", "V"},
		},
		Colors: colors,
	}
}

// Package board encodes rectangle-packing (circuit-board layout) problems
// for the csp solver: one variable per part, enumerated placement ids as
// values, and pairwise non-overlap relations compiled into allowed pairs.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcsat/arcsat/pkg/csp"
)

var (
	ErrNoParts      = errors.New("at least one part is required")
	ErrBadBoard     = errors.New("board dimensions must be positive")
	ErrBadPart      = errors.New("part dimensions must be positive")
	ErrPartTooLarge = errors.New("part does not fit on the board at all")
)

// Part is one rectangular component to place. Char is the rune used when
// rendering; it defaults to the first byte of Name.
type Part struct {
	Name string
	W    int
	H    int
	Char byte
}

func (p Part) char() byte {
	if p.Char != 0 {
		return p.Char
	}
	if p.Name != "" {
		return p.Name[0]
	}
	return '#'
}

// Problem describes a packing instance: a Width x Height board and the
// parts to place on it.
type Problem struct {
	Width  int
	Height int
	Parts  []Part
}

// Point is a lower-left placement position on the board.
type Point struct {
	X int
	Y int
}

// Placement is one decoded part position.
type Placement struct {
	Part Part
	Pos  Point
}

// Encoding holds the per-variable placement-id -> (x, y) decode tables.
// Variable i is Parts[i]; placement id v (1-based) for part i decodes via
// Position(i, v).
type Encoding struct {
	problem   Problem
	positions [][]Point
}

// Position decodes placement id val for part i.
func (e *Encoding) Position(i, val int) Point { return e.positions[i][val-1] }

// Decode maps a complete assignment to part placements, in part order.
func (e *Encoding) Decode(a csp.Assignment) []Placement {
	out := make([]Placement, len(e.problem.Parts))
	for i, p := range e.problem.Parts {
		out[i] = Placement{Part: p, Pos: e.Position(i, a[i])}
	}
	return out
}

// RenderASCII draws the board with each part's character filling its
// rectangle and '.' for free cells. y grows upward, so row 0 prints last.
func (e *Encoding) RenderASCII(a csp.Assignment) string {
	w, h := e.problem.Width, e.problem.Height
	grid := make([][]byte, h)
	for row := range grid {
		grid[row] = []byte(strings.Repeat(".", w))
	}
	for _, pl := range e.Decode(a) {
		for dx := 0; dx < pl.Part.W; dx++ {
			for dy := 0; dy < pl.Part.H; dy++ {
				grid[h-1-(pl.Pos.Y+dy)][pl.Pos.X+dx] = pl.Part.char()
			}
		}
	}
	rows := make([]string, h)
	for row := range grid {
		rows[row] = string(grid[row])
	}
	return strings.Join(rows, "\n")
}

// overlap reports whether two axis-aligned rectangles intersect. They do
// not overlap iff one is entirely left of, right of, above, or below the
// other.
func overlap(p1 Point, w1, h1 int, p2 Point, w2, h2 int) bool {
	separated := p1.X+w1 <= p2.X || p2.X+w2 <= p1.X ||
		p1.Y+h1 <= p2.Y || p2.Y+h2 <= p1.Y
	return !separated
}

// Build compiles a Problem into a csp.Model plus the Encoding needed to
// decode its solutions. Each part's domain enumerates every lower-left
// position where it fits; each part pair gets the allowed-pair table of
// non-overlapping placements.
func Build(p Problem) (*csp.Model, *Encoding, error) {
	if p.Width < 1 || p.Height < 1 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrBadBoard, p.Width, p.Height)
	}
	if len(p.Parts) == 0 {
		return nil, nil, ErrNoParts
	}
	enc := &Encoding{problem: p, positions: make([][]Point, len(p.Parts))}

	m := csp.NewModel()
	for i, part := range p.Parts {
		if part.W < 1 || part.H < 1 {
			return nil, nil, fmt.Errorf("%w: %q (%dx%d)", ErrBadPart, part.Name, part.W, part.H)
		}
		var positions []Point
		for x := 0; x+part.W <= p.Width; x++ {
			for y := 0; y+part.H <= p.Height; y++ {
				positions = append(positions, Point{X: x, Y: y})
			}
		}
		if len(positions) == 0 {
			return nil, nil, fmt.Errorf("%w: %q (%dx%d) on %dx%d", ErrPartTooLarge,
				part.Name, part.W, part.H, p.Width, p.Height)
		}
		enc.positions[i] = positions

		v := m.NewVar()
		ids := make([]int, len(positions))
		for k := range positions {
			ids[k] = k + 1
		}
		if err := m.SetDomain(v, ids); err != nil {
			return nil, nil, err
		}
	}

	for i := 0; i < len(p.Parts); i++ {
		for j := i + 1; j < len(p.Parts); j++ {
			var pairs []csp.ValuePair
			for vi, pi := range enc.positions[i] {
				for vj, pj := range enc.positions[j] {
					if !overlap(pi, p.Parts[i].W, p.Parts[i].H, pj, p.Parts[j].W, p.Parts[j].H) {
						pairs = append(pairs, csp.ValuePair{Vi: vi + 1, Vj: vj + 1})
					}
				}
			}
			if err := m.AddConstraint(i, j, pairs); err != nil {
				return nil, nil, err
			}
		}
	}
	return m, enc, nil
}

// Handout returns the 10x3 board with parts a (3x2), b (5x2), c (2x3) and
// e (7x1) used as the standard layout exercise.
func Handout() Problem {
	return Problem{
		Width:  10,
		Height: 3,
		Parts: []Part{
			{Name: "a", W: 3, H: 2},
			{Name: "b", W: 5, H: 2},
			{Name: "c", W: 2, H: 3},
			{Name: "e", W: 7, H: 1},
		},
	}
}

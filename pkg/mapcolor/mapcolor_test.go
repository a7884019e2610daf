package mapcolor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arcsat/arcsat/pkg/csp"
)

func triangleProblem(colors ...string) Problem {
	return Problem{
		Regions: []string{"A", "B", "C"},
		Edges:   [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}},
		Colors:  colors,
	}
}

func TestTriangleTwoColorsHasNoSolution(t *testing.T) {
	m, _, err := Build(triangleProblem("red", "green"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, err := m.Solve(context.Background(), csp.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if a != nil {
		t.Fatalf("a triangle is not 2-colorable, got %v", a)
	}
}

func TestTriangleThreeColorsSolvable(t *testing.T) {
	m, enc, err := Build(triangleProblem("red", "green", "blue"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, err := m.Solve(context.Background(), csp.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if a == nil {
		t.Fatal("a triangle is 3-colorable")
	}
	named := enc.Decode(a)
	if named["A"] == named["B"] || named["B"] == named["C"] || named["A"] == named["C"] {
		t.Errorf("all regions must differ pairwise, got %v", named)
	}
}

func TestAustraliaThreeColors(t *testing.T) {
	prob := Australia()
	m, enc, err := Build(prob)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, err := m.Solve(context.Background(), csp.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if a == nil {
		t.Fatal("Australia is 3-colorable")
	}
	named := enc.Decode(a)
	for _, edge := range prob.Edges {
		if named[edge[0]] == named[edge[1]] {
			t.Errorf("adjacent regions %s and %s share color %s",
				edge[0], edge[1], named[edge[0]])
		}
	}
}

func TestAustraliaTwoColorsHasNoSolution(t *testing.T) {
	m, _, err := Build(Australia("red", "green"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, err := m.Solve(context.Background(), csp.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if a != nil {
		t.Fatal("Australia needs three colors")
	}
}

func TestRenderSortsRegions(t *testing.T) {
	m, enc, err := Build(Problem{
		Regions: []string{"zulu", "alpha"},
		Colors:  []string{"red"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, err := m.Solve(context.Background(), csp.Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	out := enc.Render(a)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(lines[0], "alpha") || !strings.Contains(lines[1], "zulu") {
		t.Errorf("regions not sorted:\n%s", out)
	}
	if !strings.Contains(lines[0], "red") {
		t.Errorf("missing color name:\n%s", out)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		problem Problem
		wantErr error
	}{
		{"no regions", Problem{Colors: []string{"red"}}, ErrNoRegions},
		{"no colors", Problem{Regions: []string{"A"}}, ErrNoColors},
		{
			"duplicate region",
			Problem{Regions: []string{"A", "A"}, Colors: []string{"red"}},
			ErrDuplicateRegion,
		},
		{
			"unknown region in edge",
			Problem{
				Regions: []string{"A", "B"},
				Edges:   [][2]string{{"A", "X"}},
				Colors:  []string{"red"},
			},
			ErrUnknownRegion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Build(tt.problem)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegionVar(t *testing.T) {
	_, enc, err := Build(Australia())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := enc.RegionVar("SA"); got != 2 {
		t.Errorf("RegionVar(SA) = %d, want 2", got)
	}
	if got := enc.RegionVar("nope"); got != -1 {
		t.Errorf("RegionVar(nope) = %d, want -1", got)
	}
}

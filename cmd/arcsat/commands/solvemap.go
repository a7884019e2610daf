package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcsat/arcsat/pkg/csp"
	"github.com/arcsat/arcsat/pkg/mapcolor"
)

// mapFile is the YAML schema for a map-coloring problem:
//
//	regions: [WA, NT, SA]
//	edges:
//	  - [WA, NT]
//	  - [NT, SA]
//	colors: [red, green, blue]
type mapFile struct {
	Regions []string   `yaml:"regions" validate:"required,min=1,unique"`
	Edges   [][]string `yaml:"edges" validate:"dive,len=2"`
	Colors  []string   `yaml:"colors" validate:"required,min=1,unique"`
}

func newSolveMapCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve-map",
		Short: "Solve a map-coloring problem from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			prob, err := loadMapFile(file)
			if err != nil {
				log.Error().Err(err).Str("file", file).Msg("failed to load problem")
				return err
			}

			m, enc, err := mapcolor.Build(prob)
			if err != nil {
				log.Error().Err(err).Msg("failed to build model")
				return err
			}
			log.Info().
				Int("regions", len(prob.Regions)).
				Int("edges", len(prob.Edges)).
				Int("colors", len(prob.Colors)).
				Msg("model built")

			var st csp.Stats
			start := time.Now()
			a, err := m.Solve(cmd.Context(), solveOptions(log, &st))
			if err != nil {
				return err
			}
			log.Info().
				Dur("elapsed", time.Since(start)).
				Int("nodes", st.Nodes).
				Int("backtracks", st.Backtracks).
				Int("removals", st.Removals).
				Msg("search finished")

			if a == nil {
				fmt.Println("no solution")
				return nil
			}
			fmt.Print(enc.Render(a))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file (YAML)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func loadMapFile(path string) (mapcolor.Problem, error) {
	var f mapFile
	data, err := os.ReadFile(path)
	if err != nil {
		return mapcolor.Problem{}, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return mapcolor.Problem{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := validator.New().Struct(f); err != nil {
		return mapcolor.Problem{}, fmt.Errorf("validating %s: %w", path, err)
	}
	edges := make([][2]string, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = [2]string{e[0], e[1]}
	}
	return mapcolor.Problem{Regions: f.Regions, Edges: edges, Colors: f.Colors}, nil
}

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcsat/arcsat/pkg/board"
	"github.com/arcsat/arcsat/pkg/csp"
)

// boardFile is the YAML schema for a rectangle-packing problem:
//
//	width: 10
//	height: 3
//	parts:
//	  - name: a
//	    width: 3
//	    height: 2
//	    char: a
type boardFile struct {
	Width  int        `yaml:"width" validate:"required,min=1"`
	Height int        `yaml:"height" validate:"required,min=1"`
	Parts  []partFile `yaml:"parts" validate:"required,min=1,dive"`
}

type partFile struct {
	Name   string `yaml:"name" validate:"required"`
	Width  int    `yaml:"width" validate:"required,min=1"`
	Height int    `yaml:"height" validate:"required,min=1"`
	Char   string `yaml:"char" validate:"omitempty,len=1"`
}

func newSolveBoardCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve-board",
		Short: "Solve a rectangle-packing problem from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			prob, err := loadBoardFile(file)
			if err != nil {
				log.Error().Err(err).Str("file", file).Msg("failed to load problem")
				return err
			}

			m, enc, err := board.Build(prob)
			if err != nil {
				log.Error().Err(err).Msg("failed to build model")
				return err
			}
			log.Info().
				Int("width", prob.Width).
				Int("height", prob.Height).
				Int("parts", len(prob.Parts)).
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
			fmt.Println(enc.RenderASCII(a))
			fmt.Println()
			for _, pl := range enc.Decode(a) {
				fmt.Printf("%s: (%d,%d)\n", pl.Part.Name, pl.Pos.X, pl.Pos.Y)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file (YAML)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func loadBoardFile(path string) (board.Problem, error) {
	var f boardFile
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Problem{}, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return board.Problem{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := validator.New().Struct(f); err != nil {
		return board.Problem{}, fmt.Errorf("validating %s: %w", path, err)
	}
	parts := make([]board.Part, len(f.Parts))
	for i, p := range f.Parts {
		part := board.Part{Name: p.Name, W: p.Width, H: p.Height}
		if p.Char != "" {
			part.Char = p.Char[0]
		}
		parts[i] = part
	}
	return board.Problem{Width: f.Width, Height: f.Height, Parts: parts}, nil
}

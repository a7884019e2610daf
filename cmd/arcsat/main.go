// Command arcsat solves finite-domain constraint satisfaction problems
// described in YAML files: map coloring and rectangle packing.
package main

import (
	"context"
	"os"

	"github.com/arcsat/arcsat/cmd/arcsat/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcsat/arcsat/pkg/csp"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := csp.GetVersionInfo()
			fmt.Printf("arcsat %s (go %s)\n", info.Version, info.GoVersion)
		},
	}
}

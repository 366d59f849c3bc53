// Package cli wires the registry commands: serve runs the HTTP API, seed
// writes starter data files.
package cli

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "registry",
		Short:        "Rooms and students registry over JSON files",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSeedCmd())

	return root.Execute()
}

package main

import (
	"fmt"

	"github.com/danthegoodman1/janitor/registry"
	"github.com/spf13/cobra"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the verbs a recipe can use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range registry.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

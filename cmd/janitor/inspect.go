package main

import (
	"fmt"

	"github.com/danthegoodman1/janitor/tableio"
	"github.com/spf13/cobra"
)

var inspectRows int

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the shape, column kinds and first rows of a table file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectRows, "rows", "n", 5, "Number of rows to print")
}

func runInspect(cmd *cobra.Command, args []string) error {
	t, err := tableio.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	w := cmd.OutOrStdout()
	rows, cols := t.Shape()
	fmt.Fprintf(w, "%d rows x %d columns\n\n", rows, cols)

	// Parquet type each column would be written as
	parquetTypes := make(map[string]string)
	sa, err := tableio.SchemaForTable(t)
	if err != nil {
		fmt.Fprintf(w, "not writable as parquet: %s\n\n", err)
	} else {
		types := sa.GetColumnTypes()
		for i, name := range sa.GetColumnNames() {
			parquetTypes[name] = types[i]
		}
	}

	for _, col := range t.Columns() {
		fmt.Fprintf(w, "  %s: %s", col.Name, col.Kind())
		if pt, ok := parquetTypes[col.Name]; ok {
			fmt.Fprintf(w, " (parquet %s)", pt)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, t.Head(inspectRows).String())
	return nil
}

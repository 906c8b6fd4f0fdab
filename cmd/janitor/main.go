package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danthegoodman1/janitor"
	"github.com/danthegoodman1/janitor/gologger"
	"github.com/danthegoodman1/janitor/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger = gologger.NewLogger()

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "janitor",
	Short: "Clean tabular data with chains of verbs",
	Long: `janitor reads a CSV, JSON or Parquet file, runs it through a recipe of
cleaning verbs (clean_names, remove_column, transform_column, filter_on, ...)
and writes the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		// Each invocation gets a run id so its log lines can be grouped
		runID := utils.GenKSortedID("run_")
		l := logger.With().Str(string(gologger.RunIDKey), runID).Logger()
		ctx := context.WithValue(cmd.Context(), gologger.RunIDKey, runID)
		cmd.SetContext(l.WithContext(ctx))
		return nil
	},
}

func init() {
	janitor.RegisterFunctions()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(verbsCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/danthegoodman1/janitor/recipe"
	"github.com/danthegoodman1/janitor/tableio"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cleanIn  string
	cleanOut string

	ErrNoInput  = errors.New("no input file: set --in or the recipe's input")
	ErrNoOutput = errors.New("no output file: set --out or the recipe's output")
)

var cleanCmd = &cobra.Command{
	Use:   "clean <recipe.yaml>",
	Short: "Run a recipe over a table file",
	Long: `Reads the input table, applies the recipe's steps in order and writes
the output table. --in and --out override the recipe's input and output.
The file format follows the extension: .csv, .json, .ndjson, .jsonl or .parquet.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanIn, "in", "", "Input table file")
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "Output table file")
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	r, err := recipe.Load(args[0])
	if err != nil {
		return err
	}
	in := firstNonEmpty(cleanIn, r.Input)
	if in == "" {
		return ErrNoInput
	}
	out := firstNonEmpty(cleanOut, r.Output)
	if out == "" {
		return ErrNoOutput
	}

	s := time.Now()
	t, err := tableio.ReadFile(in)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", in, err)
	}
	logger.Debug().Str("path", in).Int("rows", t.NumRows()).Int("cols", t.NumCols()).Msg("read input")

	cleaned, err := recipe.Run(ctx, r, t)
	if err != nil {
		return err
	}

	if err = tableio.WriteFile(out, cleaned); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	logger.Info().Str("recipe", r.Name).Str("in", in).Str("out", out).Int("rows", cleaned.NumRows()).Dur("took", time.Since(s)).Msg("cleaned table")
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

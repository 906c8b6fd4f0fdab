package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danthegoodman1/janitor/tableio"
	"github.com/spf13/cobra"
	"go.uber.org/goleak"
)

const testRecipe = `
name: people
steps:
  - verb: clean_names
  - verb: filter_on
    args: {column: age, op: ">=", value: 18}
  - verb: select_columns
    args: {names: [first_name, age]}
`

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(logger.WithContext(context.Background()))
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd
}

func TestRunClean(t *testing.T) {
	// zstd decoders are started at package init by a parquet-go dependency
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("github.com/klauspost/compress/zstd.(*blockDec).startDecoder"))

	dir := t.TempDir()
	in := filepath.Join(dir, "people.csv")
	out := filepath.Join(dir, "adults.ndjson")
	recipePath := filepath.Join(dir, "recipe.yaml")
	if err := os.WriteFile(in, []byte("First Name,Age\nada,36\nbob,12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recipePath, []byte(testRecipe), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanIn, cleanOut = in, out
	defer func() { cleanIn, cleanOut = "", "" }()

	if err := runClean(newTestCmd(), []string{recipePath}); err != nil {
		t.Fatalf("runClean failed: %v", err)
	}

	got, err := tableio.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", got.NumRows())
	}
	col, _ := got.Column("first_name")
	if col.Values[0] != "ada" {
		t.Fatalf("expected ada, got %v", col.Values[0])
	}
}

func TestRunCleanNeedsInput(t *testing.T) {
	recipePath := filepath.Join(t.TempDir(), "recipe.yaml")
	if err := os.WriteFile(recipePath, []byte(testRecipe), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runClean(newTestCmd(), []string{recipePath}); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestVerbsAndInspect(t *testing.T) {
	cmd := newTestCmd()
	if err := verbsCmd.RunE(cmd, nil); err != nil {
		t.Fatal(err)
	}
	listed := cmd.OutOrStdout().(*bytes.Buffer).String()
	for _, verb := range []string{"clean_names", "join_fasta", "transform_column"} {
		if !strings.Contains(listed, verb+"\n") {
			t.Fatalf("verbs output is missing %s:\n%s", verb, listed)
		}
	}

	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,x\n2,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd = newTestCmd()
	if err := runInspect(cmd, []string{path}); err != nil {
		t.Fatal(err)
	}
	printed := cmd.OutOrStdout().(*bytes.Buffer).String()
	if !strings.Contains(printed, "2 rows x 2 columns") || !strings.Contains(printed, "a: int (parquet INT64)") || !strings.Contains(printed, "b: string (parquet BYTE_ARRAY/UTF8)") {
		t.Fatalf("unexpected inspect output:\n%s", printed)
	}
}

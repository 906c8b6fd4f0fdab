package biology

import (
	"fmt"
	"os"

	"github.com/danthegoodman1/janitor/gologger"
	"github.com/danthegoodman1/janitor/registry"
	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/verbs"
)

var logger = gologger.NewLogger()

// JoinFasta adds columnName holding, for each row, the sequence whose FASTA
// id equals the row's idColumn value. Only the sequence string is attached.
// A row whose id has no sequence fails with ErrSequenceNotFound.
func JoinFasta(t *table.Table, filename, idColumn, columnName string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error in os.Open: %w", err)
	}
	defer f.Close()

	records, err := ParseFasta(f)
	if err != nil {
		return nil, fmt.Errorf("error in ParseFasta: %w", err)
	}
	logger.Debug().Str("file", filename).Int("records", len(records)).Msg("parsed fasta file")

	return JoinRecords(t, records, idColumn, columnName)
}

// JoinRecords is JoinFasta over already parsed records.
func JoinRecords(t *table.Table, records []Record, idColumn, columnName string) (*table.Table, error) {
	seqs := make(map[string]string, len(records))
	for _, rec := range records {
		seqs[rec.ID] = rec.Sequence
	}

	return verbs.TransformColumn(t, idColumn, func(v any) (any, error) {
		id := table.FormatValue(v)
		seq, ok := seqs[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSequenceNotFound, id)
		}
		return seq, nil
	}, columnName)
}

// RegisterFunctions registers join_fasta with the verb registry.
func RegisterFunctions() {
	registry.Register("join_fasta", func(t *table.Table, args registry.Args) (*table.Table, error) {
		filename, err := args.Str("filename")
		if err != nil {
			return nil, err
		}
		idColumn, err := args.Str("id_column")
		if err != nil {
			return nil, err
		}
		columnName, err := args.Str("column_name")
		if err != nil {
			return nil, err
		}
		return JoinFasta(t, filename, idColumn, columnName)
	})
}

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/utils"
)

type (
	CSVOptions struct {
		// Delimiter defaults to CSV_DELIMITER.
		Delimiter rune
		// InferTypes turns columns that parse entirely as ints, floats or
		// true/false into typed columns. Empty cells are nil either way.
		InferTypes bool
	}
)

// ReadCSV reads a header row followed by records.
func ReadCSV(r io.Reader, opts CSVOptions) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter(opts.Delimiter)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return table.MustNew(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error in cr.ReadAll: %w", err)
	}

	cols := make([]table.Column, len(header))
	for c, name := range header {
		vals := make([]any, len(records))
		for r, rec := range records {
			if rec[c] != "" {
				vals[r] = rec[c]
			}
		}
		if opts.InferTypes {
			vals = inferColumn(vals)
		}
		cols[c] = table.Column{Name: name, Values: vals}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("error in table.New: %w", err)
	}
	return t, nil
}

func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter(0)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	cols := t.Columns()
	rec := make([]string, len(cols))
	for r := 0; r < t.NumRows(); r++ {
		for c, col := range cols {
			rec[c] = table.FormatValue(col.Values[r])
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("error writing csv row %d: %w", r, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error in cw.Flush: %w", err)
	}
	return nil
}

func delimiter(d rune) rune {
	if d != 0 {
		return d
	}
	r, _ := utf8.DecodeRuneInString(utils.CSV_DELIMITER)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// inferColumn tries int, then float, then bool. The first kind every
// non-nil value parses as wins; otherwise the strings are kept.
func inferColumn(vals []any) []any {
	parsers := []func(string) (any, bool){
		func(s string) (any, bool) {
			i, err := strconv.ParseInt(s, 10, 64)
			return i, err == nil
		},
		func(s string) (any, bool) {
			f, err := strconv.ParseFloat(s, 64)
			return f, err == nil
		},
		func(s string) (any, bool) {
			switch strings.ToLower(s) {
			case "true":
				return true, true
			case "false":
				return false, true
			}
			return nil, false
		},
	}

Parsers:
	for _, parse := range parsers {
		out := make([]any, len(vals))
		seen := false
		for i, v := range vals {
			if v == nil {
				continue
			}
			parsed, ok := parse(v.(string))
			if !ok {
				continue Parsers
			}
			out[i] = parsed
			seen = true
		}
		if seen {
			return out
		}
	}
	return vals
}

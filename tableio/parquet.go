package tableio

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/utils"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes t as a single parquet file with one optional field per
// column.
func WriteParquet(w io.Writer, t *table.Table) error {
	if t.NumCols() == 0 {
		return ErrNoColumns
	}
	sa, err := SchemaForTable(t)
	if err != nil {
		return fmt.Errorf("error in SchemaForTable: %w", err)
	}
	parquetSchema, err := sa.GetSchemaString()
	if err != nil {
		return fmt.Errorf("error in GetSchemaString: %w", err)
	}

	s := time.Now()
	pw, err := writer.NewJSONWriterFromWriter(parquetSchema, w, utils.PARQUET_NP)
	if err != nil {
		return fmt.Errorf("error in NewJSONWriterFromWriter: %w", err)
	}

	cols := t.Columns()
	kinds := make([]table.Kind, len(cols))
	for i, col := range cols {
		kinds[i] = col.Kind()
	}
	for r := 0; r < t.NumRows(); r++ {
		row := make(map[string]any, len(cols))
		for c, col := range cols {
			// Absent keys are written as nulls
			if v := parquetValue(col.Values[r], kinds[c]); v != nil {
				row[col.Name] = v
			}
		}
		rowBytes, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("error in json.Marshal of row %d: %w", r, err)
		}
		if err = pw.Write(string(rowBytes)); err != nil {
			return fmt.Errorf("error in pw.Write for row %s: %w", string(rowBytes), err)
		}
	}
	if err = pw.WriteStop(); err != nil {
		return fmt.Errorf("error in pw.WriteStop: %w", err)
	}

	logger.Debug().Int("rows", t.NumRows()).Int("cols", t.NumCols()).Dur("took", time.Since(s)).Msg("wrote parquet")
	return nil
}

// parquetValue matches a value to the field type picked for its column kind.
func parquetValue(v any, kind table.Kind) any {
	if v == nil {
		return nil
	}
	switch kind {
	case table.KindFloat:
		if i, ok := v.(int64); ok {
			return float64(i)
		}
		return v
	case table.KindInt, table.KindBool:
		return v
	default:
		return table.FormatValue(v)
	}
}

// ReadParquetFile reads a flat parquet file. Nested fields are rejected.
func ReadParquetFile(path string) (*table.Table, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("error in local.NewLocalFileReader: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, utils.PARQUET_NP)
	if err != nil {
		return nil, fmt.Errorf("error in reader.NewParquetReader: %w", err)
	}
	defer pr.ReadStop()

	// Element 0 is the root, the rest are the columns in field order.
	elements := pr.SchemaHandler.SchemaElements
	names := make([]string, 0, len(elements))
	for i := 1; i < len(elements); i++ {
		if elements[i].GetNumChildren() > 0 {
			return nil, fmt.Errorf("%w: %s", ErrNestedParquet, pr.SchemaHandler.Infos[i].ExName)
		}
		names = append(names, pr.SchemaHandler.Infos[i].ExName)
	}

	num := int(pr.GetNumRows())
	cols := make([]table.Column, len(names))
	for c, name := range names {
		cols[c] = table.Column{Name: name, Values: make([]any, num)}
	}
	if num > 0 {
		rows, err := pr.ReadByNumber(num)
		if err != nil {
			return nil, fmt.Errorf("error in pr.ReadByNumber: %w", err)
		}
		// Struct -> columns
		for r, row := range rows {
			v := reflect.ValueOf(row)
			for c := 0; c < v.NumField() && c < len(cols); c++ {
				cols[c].Values[r] = derefField(v.Field(c))
			}
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("error in table.New: %w", err)
	}
	logger.Debug().Str("path", path).Int("rows", num).Int("cols", len(cols)).Msg("read parquet")
	return t, nil
}

func derefField(f reflect.Value) any {
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return nil
		}
		f = f.Elem()
	}
	return table.Normalize(f.Interface())
}

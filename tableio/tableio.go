package tableio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danthegoodman1/janitor/gologger"
	"github.com/danthegoodman1/janitor/table"
)

type Format string

const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

var (
	logger = gologger.NewLogger()

	ErrUnknownFormat      = errors.New("unknown file format")
	ErrInvalidParquetName = errors.New("column name cannot be stored in parquet")
	ErrNestedParquet      = errors.New("nested parquet fields are not supported")
	ErrNoColumns          = errors.New("table has no columns")
	ErrNotFlatMap         = errors.New("not a flat map")
	ErrNotObject          = errors.New("json value is not an object")
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json", ".ndjson", ".jsonl":
		return FormatJSON, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func ReadFile(path string) (*table.Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatParquet {
		return ReadParquetFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error in os.Open: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return ReadCSV(f, CSVOptions{InferTypes: true})
	default:
		return ReadJSON(f)
	}
}

func WriteFile(path string, t *table.Table) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error in os.Create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, t)
	case FormatParquet:
		err = WriteParquet(f, t)
	default:
		err = WriteNDJSON(f, t)
	}
	return err
}

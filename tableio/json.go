package tableio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode"

	"github.com/danthegoodman1/gojsonutils"
	"github.com/danthegoodman1/janitor/table"
)

// ReadJSON reads either a JSON array of objects or newline-delimited objects.
// Nested objects are flattened into one column per leaf.
func ReadJSON(r io.Reader) (*table.Table, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return table.MustNew(), nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)

	var raws []any
	if first == '[' {
		if err := dec.Decode(&raws); err != nil {
			return nil, fmt.Errorf("error in json.Decode: %w", err)
		}
	} else {
		for {
			var raw any
			err := dec.Decode(&raw)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("error in json.Decode: %w", err)
			}
			raws = append(raws, raw)
		}
	}

	records := make([]map[string]any, 0, len(raws))
	for i, raw := range raws {
		jsonMap, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d", ErrNotObject, i)
		}
		flat, err := gojsonutils.Flatten(jsonMap, nil)
		if err != nil {
			return nil, fmt.Errorf("error flattening JSON map: %w", err)
		}
		flatMap, ok := flat.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %+v", ErrNotFlatMap, flat)
		}
		for k, v := range flatMap {
			flatMap[k] = wholeToInt(v)
		}
		records = append(records, flatMap)
	}

	t, err := table.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("error in table.FromRecords: %w", err)
	}
	return t, nil
}

// WriteNDJSON writes one JSON object per row.
func WriteNDJSON(w io.Writer, t *table.Table) error {
	enc := json.NewEncoder(w)
	for i, rec := range t.Records() {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("error encoding row %d: %w", i, err)
		}
	}
	return nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b[0])) {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}

// wholeToInt turns whole JSON numbers into int64 so integer fields come back
// as int columns. Integers beyond 2^53 lose precision in the float decode.
func wholeToInt(v any) any {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return v
	}
	return int64(f)
}

package biology

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type (
	// Record is one FASTA entry. ID is the first whitespace-delimited token
	// of the header line.
	Record struct {
		ID          string
		Description string
		Sequence    string
	}
)

var (
	ErrMalformedFasta   = errors.New("malformed fasta")
	ErrSequenceNotFound = errors.New("sequence id not found in fasta file")
)

// ParseFasta reads every record from r. Sequence lines are concatenated
// with surrounding whitespace removed. Blank lines and ';' comments are skipped.
func ParseFasta(r io.Reader) ([]Record, error) {
	var records []Record
	var seq strings.Builder
	var current *Record

	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
		}
		seq.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			header := strings.TrimSpace(line[1:])
			if header == "" {
				return nil, fmt.Errorf("%w: empty header on line %d", ErrMalformedFasta, lineNum)
			}
			fields := strings.Fields(header)
			current = &Record{ID: fields[0], Description: header}
		default:
			if current == nil {
				return nil, fmt.Errorf("%w: sequence data before first header on line %d", ErrMalformedFasta, lineNum)
			}
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error in scanner.Scan: %w", err)
	}
	flush()
	return records, nil
}

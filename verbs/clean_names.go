package verbs

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/danthegoodman1/janitor/table"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type (
	CleanNamesOptions struct {
		// CaseType is one of lower (default), upper or preserve.
		CaseType string `validate:"omitempty,oneof=lower upper preserve"`
		// StripUnderscores trims underscores from the left, right or both ends.
		StripUnderscores string `validate:"omitempty,oneof=left right both"`
		// RemoveSpecial drops every character that is not a letter, digit or underscore.
		RemoveSpecial bool
		// KeepAccents disables accent stripping.
		KeepAccents bool
		// PreserveOriginal records the names the columns had before cleaning.
		PreserveOriginal bool
		// TruncateLimit cuts names to at most this many characters when > 0.
		TruncateLimit int `validate:"gte=0"`
	}
)

var (
	validate = validator.New()

	separatorChars = regexp.MustCompile(`[ /:,?()\.\-]`)
	quoteChars     = regexp.MustCompile(`['’]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// CleanNames normalizes column names to lowercase snake_case-ish identifiers.
// Two columns that clean to the same name fail with table.ErrDuplicateColumn.
func CleanNames(t *table.Table, opts CleanNamesOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, err.Error())
	}

	cols := t.Columns()
	for i, col := range cols {
		cleaned, err := cleanName(col.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("error cleaning column %q: %w", col.Name, err)
		}
		if opts.PreserveOriginal && col.Original == "" && cleaned != col.Name {
			cols[i].Original = col.Name
		}
		cols[i].Name = cleaned
	}

	out, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("error in table.New: %w", err)
	}
	return out, nil
}

func cleanName(name string, opts CleanNamesOptions) (string, error) {
	switch opts.CaseType {
	case "", "lower":
		name = strings.ToLower(name)
	case "upper":
		name = strings.ToUpper(name)
	}

	name = separatorChars.ReplaceAllString(name, "_")
	name = quoteChars.ReplaceAllString(name, "")

	if opts.RemoveSpecial {
		name = strings.Map(func(r rune) rune {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, name)
	}

	if !opts.KeepAccents {
		stripped, err := StripAccents(name)
		if err != nil {
			return "", err
		}
		name = stripped
	}

	name = underscoreRuns.ReplaceAllString(name, "_")

	switch opts.StripUnderscores {
	case "left":
		name = strings.TrimLeft(name, "_")
	case "right":
		name = strings.TrimRight(name, "_")
	case "both":
		name = strings.Trim(name, "_")
	}

	if opts.TruncateLimit > 0 {
		r := []rune(name)
		if len(r) > opts.TruncateLimit {
			name = string(r[:opts.TruncateLimit])
		}
	}

	return name, nil
}

// StripAccents removes combining marks after NFD decomposition, so "café"
// becomes "cafe".
func StripAccents(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("error in transform.String: %w", err)
	}
	return out, nil
}

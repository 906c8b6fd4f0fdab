package verbs

import (
	"fmt"
	"time"

	"github.com/danthegoodman1/janitor/table"
)

type DatePart string

const (
	PartDay      DatePart = "day"
	PartMonth    DatePart = "month"
	PartYear     DatePart = "year"
	PartYearDay  DatePart = "yearday"
	PartYearWeek DatePart = "yearweek"
	PartWeekDay  DatePart = "weekday"
)

var (
	dateParts = map[DatePart]func(t time.Time) any{
		PartDay:   func(t time.Time) any { return int64(t.Day()) },
		PartMonth: func(t time.Time) any { return int64(t.Month()) },
		PartYear:  func(t time.Time) any { return int64(t.Year()) },
		PartYearDay: func(t time.Time) any {
			return int64(t.YearDay())
		},
		PartYearWeek: func(t time.Time) any {
			_, week := t.ISOWeek()
			return int64(week)
		},
		PartWeekDay: func(t time.Time) any { return t.Weekday().String() },
	}

	timeLayouts = []string{
		"2006-01-02T15:04:05.000Z",
		time.RFC3339Nano,
		"2006-01-02",
	}
)

// AddDatePart extracts part from a time column into newColumn. Missing
// values stay nil.
func AddDatePart(t *table.Table, column string, part DatePart, newColumn string) (*table.Table, error) {
	extract, ok := dateParts[part]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatePart, part)
	}
	if newColumn == "" {
		newColumn = column + "_" + string(part)
	}
	return TransformColumn(t, column, func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		ts, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("error in ParseTime: %w", err)
		}
		return extract(ts), nil
	}, newColumn)
}

// ParseTime reads a time.Time, a timestamp string, or a float/int of unix
// milliseconds.
func ParseTime(value any) (t time.Time, err error) {
	switch val := table.Normalize(value).(type) {
	case time.Time:
		t = val
	case string:
		for _, layout := range timeLayouts {
			t, err = time.Parse(layout, val)
			if err == nil {
				return
			}
		}
		err = fmt.Errorf("error in time.Parse for string %q: %w", val, err)
	case float64:
		t = time.UnixMilli(int64(val)).UTC()
	case int64:
		t = time.UnixMilli(val).UTC()
	default:
		err = ErrInvalidColumnType
	}
	return
}

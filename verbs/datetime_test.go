package verbs

import (
	"errors"
	"testing"
	"time"

	"github.com/danthegoodman1/janitor/table"
)

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("2022-01-24T00:00:00.000Z")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Day() != 24 {
		t.Fatal("mismatched date for t string")
	}

	ts, err = ParseTime(1672406408279.0)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Day() != 30 {
		t.Fatal("mismatched date for t float")
	}

	ts, err = ParseTime("2023-03-05")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Month() != time.March {
		t.Fatal("mismatched month for date string")
	}

	_, err = ParseTime(true)
	if !errors.Is(err, ErrInvalidColumnType) {
		t.Fatal("did not get invalid col type")
	}

	_, err = ParseTime("yesterday")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAddDatePart(t *testing.T) {
	tbl := table.MustNew(table.NewColumn("t", "2022-01-24T00:00:00.000Z", nil, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)))

	out, err := AddDatePart(tbl, "t", PartYear, "")
	if err != nil {
		t.Fatal(err)
	}
	col, err := out.Column("t_year")
	if err != nil {
		t.Fatal(err)
	}
	if col.Values[0] != int64(2022) || col.Values[1] != nil || col.Values[2] != int64(2021) {
		t.Fatalf("unexpected years %+v", col.Values)
	}

	out, err = AddDatePart(tbl, "t", PartWeekDay, "dow")
	if err != nil {
		t.Fatal(err)
	}
	col, _ = out.Column("dow")
	if col.Values[0] != "Monday" || col.Values[2] != "Friday" {
		t.Fatalf("unexpected weekdays %+v", col.Values)
	}

	_, err = AddDatePart(tbl, "t", "century", "")
	if !errors.Is(err, ErrUnknownDatePart) {
		t.Fatal("expected unknown date part")
	}
}

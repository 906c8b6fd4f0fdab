package verbs

import (
	"fmt"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/utils"
	"github.com/google/uuid"
)

type IDKind string

const (
	IDUUID IDKind = "uuid"
	// IDKSUID ids sort by creation time.
	IDKSUID  IDKind = "ksuid"
	IDNanoID IDKind = "nanoid"
)

// AddRowIDs adds a column holding a freshly generated unique id per row.
func AddRowIDs(t *table.Table, column string, kind IDKind) (*table.Table, error) {
	var gen func() string
	switch kind {
	case IDUUID, "":
		gen = uuid.NewString
	case IDKSUID:
		gen = func() string { return utils.GenKSortedID("") }
	case IDNanoID:
		gen = func() string { return utils.GenRandomID("") }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownIDKind, kind)
	}

	ids := make([]string, t.NumRows())
	for i := range ids {
		ids[i] = gen()
	}
	return AddColumn(t, column, ids)
}

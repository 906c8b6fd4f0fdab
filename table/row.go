package table

type (
	Row struct {
		// The row number within the table
		Num int

		// The list of column names, same order as ColVals
		ColNames []string
		// The list of column values, same order as ColNames
		ColVals []any
	}
)

// Get returns the value of the named column and whether the column exists.
func (r Row) Get(name string) (any, bool) {
	for i, n := range r.ColNames {
		if n == name {
			return r.ColVals[i], true
		}
	}
	return nil, false
}

func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.ColNames))
	for i, n := range r.ColNames {
		m[n] = r.ColVals[i]
	}
	return m
}

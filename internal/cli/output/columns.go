package output

import (
	"fmt"
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// SelectColumns narrows the columns and rows down to the selected columns in the selected order.
// An empty selection keeps all columns.
func SelectColumns(columns []string, rows iter.Seq[[]any], selected []string) ([]string, iter.Seq[[]any], error) {
	if len(selected) == 0 {
		return columns, rows, nil
	}

	unknown := mapset.NewSet(selected...).Difference(mapset.NewSet(columns...))
	if unknown.Cardinality() > 0 {
		names := unknown.ToSlice()
		slices.Sort(names)
		return nil, nil, fmt.Errorf("unknown column(s) %q: must be one of %q", names, columns)
	}

	indexes := make([]int, len(selected))
	for i, name := range selected {
		indexes[i] = slices.Index(columns, name)
	}
	projected := func(yield func([]any) bool) {
		for row := range rows {
			out := make([]any, len(indexes))
			for i, idx := range indexes {
				if idx < len(row) {
					out[i] = row[idx]
				}
			}
			if !yield(out) {
				return
			}
		}
	}
	return slices.Clone(selected), projected, nil
}

package render

import (
	"github.com/woozymasta/podesmap/internal/dataset"
)

// Cell is one table cell. Null cells have no value in their row.
type Cell struct {
	Text    string
	Null    bool
	Numeric bool
}

// TableView is the tabular view of every row and column, values unmodified.
type TableView struct {
	Columns []string
	Rows    [][]Cell
}

// BuildTable lays out t using its column union.
func BuildTable(t *dataset.Table) TableView {
	view := TableView{
		Columns: t.Columns,
		Rows:    make([][]Cell, 0, t.Len()),
	}

	for _, row := range t.Rows {
		cells := make([]Cell, len(t.Columns))
		for i, col := range t.Columns {
			v, ok := row.Get(col)
			if !ok {
				cells[i] = Cell{Null: true}
				continue
			}
			cells[i] = Cell{Text: v.String(), Numeric: v.IsNumber()}
		}
		view.Rows = append(view.Rows, cells)
	}

	return view
}

package anim

// Spritesheet describes the grid layout of a spritesheet image and computes
// cell indices from grid coordinates. It is pure index arithmetic: image
// loading, pixel rects and atlas integration stay with the host's rendering
// layer.
//
// Cells are numbered row-major, left to right, top to bottom.
type Spritesheet struct {
	columns int
	rows    int
}

// NewSpritesheet describes a sheet split into columns x rows cells.
func NewSpritesheet(columns, rows int) Spritesheet {
	return Spritesheet{columns: columns, rows: rows}
}

// Columns returns the number of columns in the sheet.
func (s Spritesheet) Columns() int { return s.columns }

// Rows returns the number of rows in the sheet.
func (s Spritesheet) Rows() int { return s.rows }

// Cell returns the index of the cell at the given column and row.
func (s Spritesheet) Cell(column, row int) int {
	return row*s.columns + column
}

// Row returns all cell indices of a row, left to right.
func (s Spritesheet) Row(row int) []int {
	out := make([]int, s.columns)
	for c := range out {
		out[c] = s.Cell(c, row)
	}
	return out
}

// Column returns all cell indices of a column, top to bottom.
func (s Spritesheet) Column(column int) []int {
	out := make([]int, s.rows)
	for r := range out {
		out[r] = s.Cell(column, r)
	}
	return out
}

// Strip returns up to count cells starting at the given column and row,
// reading row-major and wrapping to the next row. It stops at the last cell
// of the sheet, so the result may be shorter than count.
func (s Spritesheet) Strip(column, row, count int) []int {
	out := make([]int, 0, count)
	last := s.columns * s.rows
	for idx := s.Cell(column, row); idx < last && len(out) < count; idx++ {
		out = append(out, idx)
	}
	return out
}

// All returns every cell index of the sheet in order.
func (s Spritesheet) All() []int {
	out := make([]int, s.columns*s.rows)
	for i := range out {
		out[i] = i
	}
	return out
}

package board

// Board dimensions. The board is a hexagon of side Side stored as a ragged
// array of Rows rows whose lengths grow 1..Side and shrink back to 1.
const (
	Side      = 11
	Rows      = 2*Side - 1
	MiddleRow = Side - 1
	CenterCol = Side / 2
	CellCount = Side * Side
)

// Coord identifies a cell by row and column in the ragged layout.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is a single board position.
type Cell struct {
	Coord
	Border    bool
	neighbors []int
}

// Board owns every cell of one game and their adjacency lists.
// It is never modified after Build and may be shared for reading.
type Board struct {
	cells []Cell
	rows  [][]int // row -> col -> cell index
}

// Neighbor offsets. The hex tiling shears the other way below the middle
// row, so each third of the board has its own column offsets.
var (
	rowDiff       = [6]int{-1, -1, 0, 0, 1, 1}
	upperColDiff  = [6]int{-1, 0, -1, 1, 0, 1}
	middleColDiff = [6]int{-1, 0, -1, 1, 0, -1}
	lowerColDiff  = [6]int{1, 0, -1, 1, 0, -1}
)

// RowLen returns the number of cells in a row, or 0 for rows off the board.
func RowLen(row int) int {
	switch {
	case row < 0 || row >= Rows:
		return 0
	case row <= MiddleRow:
		return row + 1
	default:
		return Rows - row
	}
}

// Build constructs the fixed board graph.
func Build() *Board {
	b := &Board{
		cells: make([]Cell, 0, CellCount),
		rows:  make([][]int, Rows),
	}

	for row := 0; row < Rows; row++ {
		n := RowLen(row)
		b.rows[row] = make([]int, n)
		for col := 0; col < n; col++ {
			b.rows[row][col] = len(b.cells)
			b.cells = append(b.cells, Cell{
				Coord:  Coord{Row: row, Col: col},
				Border: col == 0 || col == n-1,
			})
		}
	}

	for i := range b.cells {
		c := &b.cells[i]
		colDiff := offsetsFor(c.Row)
		c.neighbors = make([]int, 0, 6)
		for k := range rowDiff {
			if j, ok := b.Index(Coord{Row: c.Row + rowDiff[k], Col: c.Col + colDiff[k]}); ok {
				c.neighbors = append(c.neighbors, j)
			}
		}
	}

	return b
}

func offsetsFor(row int) [6]int {
	switch {
	case row < MiddleRow:
		return upperColDiff
	case row == MiddleRow:
		return middleColDiff
	default:
		return lowerColDiff
	}
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Valid reports whether c addresses a cell on the board.
func (b *Board) Valid(c Coord) bool {
	return c.Col >= 0 && c.Col < RowLen(c.Row)
}

// Index returns the dense index of the cell at c.
func (b *Board) Index(c Coord) (int, bool) {
	if !b.Valid(c) {
		return 0, false
	}
	return b.rows[c.Row][c.Col], true
}

// Cell returns the cell with index i.
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// Neighbors returns the indices of the cells adjacent to cell i.
// The returned slice must not be modified.
func (b *Board) Neighbors(i int) []int {
	return b.cells[i].neighbors
}

// Adjacent reports whether cells i and j are one hop apart.
func (b *Board) Adjacent(i, j int) bool {
	for _, n := range b.cells[i].neighbors {
		if n == j {
			return true
		}
	}
	return false
}

// Center returns the index of the middle cell of the middle row.
func (b *Board) Center() int {
	return b.rows[MiddleRow][CenterCol]
}

// Coords returns the coordinates of all cells in index order.
func (b *Board) Coords() []Coord {
	coords := make([]Coord, len(b.cells))
	for i, c := range b.cells {
		coords[i] = c.Coord
	}
	return coords
}

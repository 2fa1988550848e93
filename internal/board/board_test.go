package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RowLengths(t *testing.T) {
	b := Build()
	require.Equal(t, CellCount, b.Len())

	expected := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	for row, n := range expected {
		assert.Equal(t, n, RowLen(row), "row %d", row)
	}
	assert.Zero(t, RowLen(-1))
	assert.Zero(t, RowLen(Rows))
}

func TestBuild_AdjacencySymmetric(t *testing.T) {
	b := Build()

	for i := 0; i < b.Len(); i++ {
		for _, j := range b.Neighbors(i) {
			assert.True(t, b.Adjacent(j, i),
				"%v lists %v as neighbor but not the reverse", b.Cell(i).Coord, b.Cell(j).Coord)
		}
	}
}

func TestBuild_NoSelfOrDuplicateNeighbors(t *testing.T) {
	b := Build()

	for i := 0; i < b.Len(); i++ {
		seen := make(map[int]bool)
		for _, j := range b.Neighbors(i) {
			assert.NotEqual(t, i, j, "%v is its own neighbor", b.Cell(i).Coord)
			assert.False(t, seen[j], "%v lists %v twice", b.Cell(i).Coord, b.Cell(j).Coord)
			seen[j] = true
		}
	}
}

func TestBuild_DegreeBounds(t *testing.T) {
	b := Build()

	for i := 0; i < b.Len(); i++ {
		c := b.Cell(i)
		degree := len(b.Neighbors(i))
		assert.GreaterOrEqual(t, degree, 2, "%v", c.Coord)
		assert.LessOrEqual(t, degree, 6, "%v", c.Coord)
		if !c.Border {
			assert.Equal(t, 6, degree, "interior cell %v", c.Coord)
		} else {
			assert.Less(t, degree, 6, "border cell %v", c.Coord)
		}
	}
}

func TestBuild_CornerDegrees(t *testing.T) {
	b := Build()

	tests := []struct {
		coord  Coord
		degree int
	}{
		{Coord{Row: 0, Col: 0}, 2},
		{Coord{Row: Rows - 1, Col: 0}, 2},
		{Coord{Row: MiddleRow, Col: 0}, 3},
		{Coord{Row: MiddleRow, Col: Side - 1}, 3},
	}

	for _, tt := range tests {
		i, ok := b.Index(tt.coord)
		require.True(t, ok)
		assert.Len(t, b.Neighbors(i), tt.degree, "%v", tt.coord)
	}
}

func TestBuild_BorderClassification(t *testing.T) {
	b := Build()

	for i := 0; i < b.Len(); i++ {
		c := b.Cell(i)
		want := c.Col == 0 || c.Col == RowLen(c.Row)-1
		assert.Equal(t, want, c.Border, "%v", c.Coord)
	}
}

func TestBuild_KnownNeighbors(t *testing.T) {
	b := Build()

	tests := []struct {
		name string
		cell Coord
		want []Coord
	}{
		{"upper interior", Coord{5, 2}, []Coord{{4, 1}, {4, 2}, {5, 1}, {5, 3}, {6, 2}, {6, 3}}},
		{"middle interior", Coord{10, 5}, []Coord{{9, 4}, {9, 5}, {10, 4}, {10, 6}, {11, 5}, {11, 4}}},
		{"lower interior", Coord{15, 2}, []Coord{{14, 3}, {14, 2}, {15, 1}, {15, 3}, {16, 2}, {16, 1}}},
		{"top pole", Coord{0, 0}, []Coord{{1, 0}, {1, 1}}},
		{"bottom pole", Coord{20, 0}, []Coord{{19, 1}, {19, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := b.Index(tt.cell)
			require.True(t, ok)

			var got []Coord
			for _, j := range b.Neighbors(i) {
				got = append(got, b.Cell(j).Coord)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndex(t *testing.T) {
	b := Build()

	i, ok := b.Index(Coord{Row: 10, Col: 5})
	require.True(t, ok)
	assert.Equal(t, b.Center(), i)
	assert.Equal(t, Coord{Row: 10, Col: 5}, b.Cell(i).Coord)

	for _, c := range []Coord{{-1, 0}, {0, 1}, {21, 0}, {10, 11}, {19, 2}, {5, -1}} {
		_, ok := b.Index(c)
		assert.False(t, ok, "%v should be off the board", c)
		assert.False(t, b.Valid(c))
	}
}

func TestCoords_IndexOrder(t *testing.T) {
	b := Build()
	coords := b.Coords()
	require.Len(t, coords, CellCount)

	for i, c := range coords {
		j, ok := b.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, j)
	}
}

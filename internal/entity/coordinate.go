package entity

import (
	"cmp"
	"fmt"
)

const (
	BoardSize = 3

	columnLabels = "abc"
	rowLabels    = "123"
)

// Coordinate identifies a board cell by row and column, both in [0, BoardSize).
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Compare orders coordinates by row, then by column.
func (that Coordinate) Compare(other Coordinate) int {
	if c := cmp.Compare(that.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(that.Col, other.Col)
}

func (that Coordinate) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Label - returns the console notation of the cell, e.g. "a1" for (0, 0).
func (that Coordinate) Label() string {
	if !that.IsValid() {
		return that.String()
	}
	return string(columnLabels[that.Col]) + string(rowLabels[that.Row])
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(row=%d, col=%d)", that.Row, that.Col)
}

// AllCoordinates - returns every cell of the board in row-major order.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			coords = append(coords, NewCoordinate(row, col))
		}
	}
	return coords
}

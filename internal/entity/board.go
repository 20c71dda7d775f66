package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// PlayerID is the owner key of a cell. Unclaimed marks cells no player owns yet.
type PlayerID uint8

const (
	Unclaimed PlayerID = iota
	PlayerOne
	PlayerTwo
)

const (
	TotalPlayers = 2

	MarkX     = "X"
	MarkO     = "O"
	EmptyCell = " "
)

// Grid is the renderable view of a board: one mark per cell, indexed [row][col].
type Grid [BoardSize][BoardSize]string

type cellSet map[Coordinate]struct{}

func (that cellSet) has(coord Coordinate) bool {
	_, ok := that[coord]
	return ok
}

func (that cellSet) containsAll(line [BoardSize]Coordinate) bool {
	for _, coord := range line {
		if !that.has(coord) {
			return false
		}
	}
	return true
}

// Board owns the occupancy of the nine cells and the registered player names.
// Every cell belongs to exactly one of the Unclaimed, PlayerOne or PlayerTwo sets.
type Board struct {
	winLines  [][BoardSize]Coordinate
	occupancy map[PlayerID]cellSet
	names     map[PlayerID]string
}

func NewBoard() *Board {
	unclaimed := make(cellSet, BoardSize*BoardSize)
	for _, coord := range AllCoordinates() {
		unclaimed[coord] = struct{}{}
	}

	return &Board{
		winLines: buildWinLines(),
		occupancy: map[PlayerID]cellSet{
			Unclaimed: unclaimed,
			PlayerOne: {},
			PlayerTwo: {},
		},
		names: make(map[PlayerID]string, TotalPlayers),
	}
}

// buildWinLines - returns the 3 rows, 3 columns and 2 diagonals.
func buildWinLines() [][BoardSize]Coordinate {
	lines := make([][BoardSize]Coordinate, 0, 2*BoardSize+2)

	for i := range BoardSize {
		var row, col [BoardSize]Coordinate
		for j := range BoardSize {
			row[j] = NewCoordinate(i, j)
			col[j] = NewCoordinate(j, i)
		}
		lines = append(lines, row, col)
	}

	var diag, antiDiag [BoardSize]Coordinate
	for i := range BoardSize {
		diag[i] = NewCoordinate(i, i)
		antiDiag[i] = NewCoordinate(BoardSize-1-i, i)
	}

	return append(lines, diag, antiDiag)
}

func IsPlayer(playerID PlayerID) bool {
	return playerID == PlayerOne || playerID == PlayerTwo
}

// NextPlayer - returns the player who moves after playerID.
func NextPlayer(playerID PlayerID) PlayerID {
	return playerID%TotalPlayers + 1
}

// Mark - returns the symbol drawn for the player's cells.
func Mark(playerID PlayerID) string {
	switch playerID {
	case PlayerOne:
		return MarkX
	case PlayerTwo:
		return MarkO
	default:
		return EmptyCell
	}
}

func noSuchPlayer(playerID PlayerID) error {
	return fmt.Errorf("%w with id %d", apperror.ErrNoSuchPlayer, playerID)
}

// Update - moves coord from the unclaimed set into the player's set.
func (that *Board) Update(playerID PlayerID, coord Coordinate) error {
	if !IsPlayer(playerID) {
		return noSuchPlayer(playerID)
	}

	unclaimed := that.occupancy[Unclaimed]
	if !unclaimed.has(coord) {
		return &CoordinateError{Err: apperror.ErrCellOccupied, Coord: coord}
	}

	owned := that.occupancy[playerID]
	if owned.has(coord) {
		return &CoordinateError{Err: apperror.ErrInternalDuplicate, Coord: coord}
	}

	delete(unclaimed, coord)
	owned[coord] = struct{}{}

	return nil
}

// CheckWin - reports whether the player's cells cover any win line.
func (that *Board) CheckWin(playerID PlayerID) (bool, error) {
	if !IsPlayer(playerID) {
		return false, noSuchPlayer(playerID)
	}

	owned := that.occupancy[playerID]
	for _, line := range that.winLines {
		if owned.containsAll(line) {
			return true, nil
		}
	}

	return false, nil
}

func (that *Board) IsFull() (bool, error) {
	return len(that.occupancy[Unclaimed]) == 0, nil
}

func (that *Board) SetName(playerID PlayerID, name string) error {
	if !IsPlayer(playerID) {
		return noSuchPlayer(playerID)
	}

	that.names[playerID] = name

	return nil
}

func (that *Board) GetName(playerID PlayerID) (string, error) {
	name, ok := that.names[playerID]
	if !ok {
		return "", noSuchPlayer(playerID)
	}

	return name, nil
}

// Owner - returns the key of the set holding coord, Unclaimed for free or unknown cells.
func (that *Board) Owner(coord Coordinate) PlayerID {
	for _, playerID := range []PlayerID{PlayerOne, PlayerTwo} {
		if that.occupancy[playerID].has(coord) {
			return playerID
		}
	}
	return Unclaimed
}

// Cells - returns the cells held by playerID sorted by row, then column.
func (that *Board) Cells(playerID PlayerID) ([]Coordinate, error) {
	set, ok := that.occupancy[playerID]
	if !ok {
		return nil, noSuchPlayer(playerID)
	}

	cells := make([]Coordinate, 0, len(set))
	for coord := range set {
		cells = append(cells, coord)
	}
	slices.SortFunc(cells, Coordinate.Compare)

	return cells, nil
}

// Render - returns the mark of every cell.
func (that *Board) Render() Grid {
	var grid Grid
	for _, coord := range AllCoordinates() {
		grid[coord.Row][coord.Col] = Mark(that.Owner(coord))
	}
	return grid
}

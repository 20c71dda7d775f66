package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrUnknownState = errors.New("unknown state")

// EntryError is returned for input that does not name a board cell.
type EntryError struct {
	Text string
}

func (that *EntryError) Error() string {
	return fmt.Sprintf("entry %q is not a valid input", that.Text)
}

func (that *EntryError) Unwrap() error {
	return apperror.ErrInvalidEntry
}

type MoveStateKind int

const (
	MoveRequest MoveStateKind = iota
	MoveReRequest
	MoveParse
	MoveCheck
)

func (that MoveStateKind) String() string {
	switch that {
	case MoveRequest:
		return "request"
	case MoveReRequest:
		return "re-request"
	case MoveParse:
		return "parse"
	case MoveCheck:
		return "check"
	default:
		return fmt.Sprintf("move-state(%d)", int(that))
	}
}

// MoveState is one step of resolving a single player's turn. Only the fields
// used by Kind are set: Err for MoveReRequest, Text for MoveParse and Coord for MoveCheck.
type MoveState struct {
	Kind     MoveStateKind
	PlayerID entity.PlayerID

	Text  string
	Coord entity.Coordinate
	Err   error
}

func NewMoveRequest(playerID entity.PlayerID) MoveState {
	return MoveState{Kind: MoveRequest, PlayerID: playerID}
}

func NewMoveReRequest(playerID entity.PlayerID, err error) MoveState {
	return MoveState{Kind: MoveReRequest, PlayerID: playerID, Err: err}
}

func NewMoveParse(playerID entity.PlayerID, text string) MoveState {
	return MoveState{Kind: MoveParse, PlayerID: playerID, Text: text}
}

func NewMoveCheck(playerID entity.PlayerID, coord entity.Coordinate) MoveState {
	return MoveState{Kind: MoveCheck, PlayerID: playerID, Coord: coord}
}

// Run - performs the step and returns the following one. apperror.ErrTerminated
// means a legal move has been committed to the board.
func (that MoveState) Run(term *Terminal, board *entity.Board) (MoveState, error) {
	switch that.Kind {
	case MoveRequest:
		return that.request(term, board)
	case MoveReRequest:
		return that.reRequest(term, board)
	case MoveParse:
		return that.parse(term)
	case MoveCheck:
		return that.check(term, board)
	default:
		return MoveState{}, fmt.Errorf("%w: %s", ErrUnknownState, that.Kind)
	}
}

func (that MoveState) request(term *Terminal, board *entity.Board) (MoveState, error) {
	name, err := board.GetName(that.PlayerID)
	if err != nil {
		return MoveState{}, err
	}

	if err = term.Say("\nThe current board state is:\n"); err != nil {
		return MoveState{}, err
	}

	if err = term.ShowBoard(board); err != nil {
		return MoveState{}, err
	}

	if err = term.Say("\nP%d: %s is up next.", that.PlayerID, name); err != nil {
		return MoveState{}, err
	}

	text, err := term.Ask("Please enter your next move (e.g. a1, b2):")
	if err != nil {
		return MoveState{}, err
	}

	return NewMoveParse(that.PlayerID, text), nil
}

func (that MoveState) reRequest(term *Terminal, board *entity.Board) (MoveState, error) {
	name, err := board.GetName(that.PlayerID)
	if err != nil {
		return MoveState{}, err
	}

	text, err := term.Ask("P%d: %s, %s. Please enter a valid space:", that.PlayerID, name, that.Err)
	if err != nil {
		return MoveState{}, err
	}

	return NewMoveParse(that.PlayerID, text), nil
}

func (that MoveState) parse(term *Terminal) (MoveState, error) {
	coord, err := ParseMove(that.Text)
	if err != nil {
		term.logger.Info("move rejected", "player", that.PlayerID, "error", err)
		return NewMoveReRequest(that.PlayerID, err), nil
	}

	return NewMoveCheck(that.PlayerID, coord), nil
}

func (that MoveState) check(term *Terminal, board *entity.Board) (MoveState, error) {
	err := board.Update(that.PlayerID, that.Coord)
	switch {
	case err == nil:
		return MoveState{}, apperror.ErrTerminated
	case errors.Is(err, apperror.ErrCellOccupied):
		term.logger.Info("move rejected", "player", that.PlayerID, "error", err)
		return NewMoveReRequest(that.PlayerID, err), nil
	default:
		return MoveState{}, err
	}
}

// ParseMove - converts "<column><row>" input such as "b2" into a coordinate.
// Surrounding whitespace is ignored and the column letter is case-insensitive.
func ParseMove(text string) (entity.Coordinate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return entity.Coordinate{}, &EntryError{Text: trimmed}
	}

	colToken, rowToken := strings.ToLower(trimmed[:1]), trimmed[1:]

	col := strings.Index("abc", colToken)
	row := strings.Index("123", rowToken)
	if col < 0 || row < 0 || len(rowToken) != 1 {
		return entity.Coordinate{}, &EntryError{Text: trimmed}
	}

	return entity.NewCoordinate(row, col), nil
}

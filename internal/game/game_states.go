package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type StateKind int

const (
	StateEnterInfo StateKind = iota
	StatePlayerMove
	StatePlayerWin
	StatePlayerDraw
)

func (that StateKind) String() string {
	switch that {
	case StateEnterInfo:
		return "enter-info"
	case StatePlayerMove:
		return "player-move"
	case StatePlayerWin:
		return "player-win"
	case StatePlayerDraw:
		return "player-draw"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

// State is one step of a match. PlayerID is unused by StatePlayerDraw.
type State struct {
	Kind     StateKind
	PlayerID entity.PlayerID
}

// InitialState - a match starts by asking player one for a name.
func InitialState() State {
	return NewEnterInfo(entity.PlayerOne)
}

func NewEnterInfo(playerID entity.PlayerID) State {
	return State{Kind: StateEnterInfo, PlayerID: playerID}
}

func NewPlayerMove(playerID entity.PlayerID) State {
	return State{Kind: StatePlayerMove, PlayerID: playerID}
}

func NewPlayerWin(playerID entity.PlayerID) State {
	return State{Kind: StatePlayerWin, PlayerID: playerID}
}

func NewPlayerDraw() State {
	return State{Kind: StatePlayerDraw}
}

func (that State) String() string {
	if that.Kind == StatePlayerDraw {
		return that.Kind.String()
	}
	return fmt.Sprintf("%s(P%d)", that.Kind, that.PlayerID)
}

func (that State) IsTerminal() bool {
	return that.Kind == StatePlayerWin || that.Kind == StatePlayerDraw
}

// Winner - returns the winning player of a terminal state, entity.Unclaimed for a draw.
func (that State) Winner() entity.PlayerID {
	if that.Kind == StatePlayerWin {
		return that.PlayerID
	}
	return entity.Unclaimed
}

// Run - performs the state's action against the board.
func (that State) Run(term *Terminal, board *entity.Board) error {
	switch that.Kind {
	case StateEnterInfo:
		return that.enterInfo(term, board)
	case StatePlayerMove:
		return that.playerMove(term, board)
	case StatePlayerWin:
		return that.playerWin(term, board)
	case StatePlayerDraw:
		return that.playerDraw(term, board)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownState, that.Kind)
	}
}

// Next - returns the state that follows, or apperror.ErrTerminated once the match is over.
func (that State) Next(board *entity.Board) (State, error) {
	switch that.Kind {
	case StateEnterInfo:
		if that.PlayerID < entity.TotalPlayers {
			return NewEnterInfo(that.PlayerID + 1), nil
		}
		return NewPlayerMove(entity.PlayerOne), nil

	case StatePlayerMove:
		// a move that completes a line on the last free cell is a win, not a draw
		won, err := board.CheckWin(that.PlayerID)
		if err != nil {
			return State{}, err
		}
		if won {
			return NewPlayerWin(that.PlayerID), nil
		}

		full, err := board.IsFull()
		if err != nil {
			return State{}, err
		}
		if full {
			return NewPlayerDraw(), nil
		}

		return NewPlayerMove(entity.NextPlayer(that.PlayerID)), nil

	case StatePlayerWin, StatePlayerDraw:
		return State{}, apperror.ErrTerminated

	default:
		return State{}, fmt.Errorf("%w: %s", ErrUnknownState, that.Kind)
	}
}

func (that State) enterInfo(term *Terminal, board *entity.Board) error {
	name, err := term.Ask("Player %d: Please enter your name:", that.PlayerID)
	if err != nil {
		return err
	}

	return board.SetName(that.PlayerID, strings.TrimSpace(name))
}

// playerMove - drives the move states until one legal move is on the board.
func (that State) playerMove(term *Terminal, board *entity.Board) error {
	state := NewMoveRequest(that.PlayerID)

	for {
		next, err := state.Run(term, board)
		if errors.Is(err, apperror.ErrTerminated) {
			return nil
		}
		if err != nil {
			return err
		}

		state = next
	}
}

func (that State) playerWin(term *Terminal, board *entity.Board) error {
	name, err := board.GetName(that.PlayerID)
	if err != nil {
		return err
	}

	if err = term.Say("\n\nP%d: %s is the winner!", that.PlayerID, name); err != nil {
		return err
	}

	return showFinalBoard(term, board)
}

func (that State) playerDraw(term *Terminal, board *entity.Board) error {
	if err := term.Say("\n\nThe game ended in a draw!"); err != nil {
		return err
	}

	return showFinalBoard(term, board)
}

func showFinalBoard(term *Terminal, board *entity.Board) error {
	if err := term.Say("The final board state is:\n"); err != nil {
		return err
	}

	if err := term.ShowBoard(board); err != nil {
		return err
	}

	return term.Say("")
}

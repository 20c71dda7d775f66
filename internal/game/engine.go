package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const welcomeMessage = "Welcome to Tic-Tac-Toe!!!\n"

// Recorder receives every finished match. winner is entity.Unclaimed for a draw.
type Recorder interface {
	Record(ctx context.Context, board *entity.Board, winner entity.PlayerID) error
}

// Engine owns the board and the current state of a single match.
type Engine struct {
	logger   *slog.Logger
	term     *Terminal
	recorder Recorder

	board *entity.Board
	state State
}

// NewEngine - creates an engine for a fresh match. recorder may be nil.
func NewEngine(logger *slog.Logger, term *Terminal, recorder Recorder) *Engine {
	return &Engine{
		logger:   logger.With("component", "engine"),
		term:     term,
		recorder: recorder,
		board:    entity.NewBoard(),
		state:    InitialState(),
	}
}

func (that *Engine) Board() *entity.Board {
	return that.board
}

func (that *Engine) State() State {
	return that.state
}

// Run - plays the match to the end. Any returned error is fatal and has
// already been reported to the player.
func (that *Engine) Run(ctx context.Context) error {
	if err := that.term.Say(welcomeMessage); err != nil {
		return err
	}

	if err := that.loop(ctx); err != nil {
		// the terminal may be the thing that failed
		_ = that.term.Say("Fatal Error: %v", err)
		return err
	}

	return nil
}

func (that *Engine) loop(ctx context.Context) error {
	log := that.logger.With("method", "loop")

	for {
		if err := that.state.Run(that.term, that.board); err != nil {
			return fmt.Errorf("%s failed: %w", that.state, err)
		}

		if that.state.IsTerminal() {
			that.record(ctx)
		}

		next, err := that.state.Next(that.board)
		if errors.Is(err, apperror.ErrTerminated) {
			log.Debug("match finished", "state", that.state.String())
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s has no next state: %w", that.state, err)
		}

		log.Debug("state transition", "from", that.state.String(), "to", next.String())
		that.state = next
	}
}

func (that *Engine) record(ctx context.Context) {
	if that.recorder == nil {
		return
	}

	log := that.logger.With("method", "record")

	if err := that.recorder.Record(ctx, that.board, that.state.Winner()); err != nil {
		log.Error("failed to record match result", "error", err)
	}
}

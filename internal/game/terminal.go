package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// LineReader blocks until one line of player input is available.
type LineReader interface {
	ReadLine() (string, error)
}

// BoardRenderer draws a board grid to its display.
type BoardRenderer interface {
	Render(grid entity.Grid) error
}

// Terminal bundles the I/O collaborators the states talk to.
type Terminal struct {
	logger *slog.Logger

	reader   LineReader
	renderer BoardRenderer
	out      io.Writer
}

func NewTerminal(logger *slog.Logger, reader LineReader, renderer BoardRenderer, out io.Writer) *Terminal {
	return &Terminal{
		logger:   logger.With("component", "terminal"),
		reader:   reader,
		renderer: renderer,
		out:      out,
	}
}

// Say - writes one line of text to the player.
func (that *Terminal) Say(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Ask - writes a prompt and waits for the answer.
func (that *Terminal) Ask(format string, args ...any) (string, error) {
	if err := that.Say(format, args...); err != nil {
		return "", err
	}

	line, err := that.reader.ReadLine()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (that *Terminal) ShowBoard(board *entity.Board) error {
	if err := that.renderer.Render(board.Render()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

package game

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newScriptedTerminal - returns a terminal fed by the given input lines and the buffer it writes to.
func newScriptedTerminal(lines ...string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	term := NewTerminal(
		newTestLogger(),
		console.NewLineReader(strings.NewReader(input)),
		console.NewBoxRenderer(&out),
		&out,
	)

	return term, &out
}

func newNamedBoard(t *testing.T) *entity.Board {
	t.Helper()

	board := entity.NewBoard()
	require.NoError(t, board.SetName(entity.PlayerOne, "Alice"))
	require.NoError(t, board.SetName(entity.PlayerTwo, "Bob"))

	return board
}

func claim(t *testing.T, board *entity.Board, playerID entity.PlayerID, coords ...entity.Coordinate) {
	t.Helper()

	for _, coord := range coords {
		require.NoError(t, board.Update(playerID, coord))
	}
}

type mockRecorder struct {
	mock.Mock
}

func (that *mockRecorder) Record(ctx context.Context, board *entity.Board, winner entity.PlayerID) error {
	args := that.Called(ctx, board, winner)
	return args.Error(0)
}

package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchResult(t *testing.T) {
	finishedAt := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	newNamedBoard := func(t *testing.T) *Board {
		t.Helper()

		board := NewBoard()
		require.NoError(t, board.SetName(PlayerOne, "Alice"))
		require.NoError(t, board.SetName(PlayerTwo, "Bob"))
		return board
	}

	t.Run("Win", func(t *testing.T) {
		// Given: Alice holds the left column
		board := newNamedBoard(t)
		claim(t, board, PlayerOne, NewCoordinate(2, 0), NewCoordinate(0, 0), NewCoordinate(1, 0))
		claim(t, board, PlayerTwo, NewCoordinate(1, 1), NewCoordinate(0, 2))

		// When: summarizing the match
		result, err := NewMatchResult("42", board, PlayerOne, finishedAt)

		// Then: the summary holds the winner, names and sorted cells
		require.NoError(t, err)
		expected := &MatchResult{
			ID:      "42",
			Outcome: OutcomeWin,
			Winner:  PlayerOne,
			Names:   map[PlayerID]string{PlayerOne: "Alice", PlayerTwo: "Bob"},
			Cells: map[PlayerID][]Coordinate{
				PlayerOne: {{0, 0}, {1, 0}, {2, 0}},
				PlayerTwo: {{0, 2}, {1, 1}},
			},
			FinishedAt: finishedAt,
		}
		assert.Equal(t, expected, result)
		assert.False(t, result.IsDraw())
	})

	t.Run("Draw", func(t *testing.T) {
		board := newNamedBoard(t)

		result, err := NewMatchResult("43", board, Unclaimed, finishedAt)

		require.NoError(t, err)
		assert.True(t, result.IsDraw())
		assert.Equal(t, Unclaimed, result.Winner)
	})

	t.Run("Error when a name is missing", func(t *testing.T) {
		board := NewBoard()

		_, err := NewMatchResult("44", board, PlayerOne, finishedAt)

		require.ErrorIs(t, err, apperror.ErrNoSuchPlayer)
	})
}

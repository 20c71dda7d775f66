package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestLineReader_ReadLine(t *testing.T) {
	t.Run("Reads lines without line endings", func(t *testing.T) {
		// Given: input with LF, CRLF and an unterminated last line
		reader := NewLineReader(strings.NewReader("Alice\r\nb2\n  a1  \nlast"))

		// When/Then: each call returns one line
		for _, expected := range []string{"Alice", "b2", "  a1  ", "last"} {
			line, err := reader.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, expected, line)
		}

		// Then: the exhausted input reports ErrInputClosed
		_, err := reader.ReadLine()
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Empty lines are returned as empty strings", func(t *testing.T) {
		reader := NewLineReader(strings.NewReader("\n"))

		line, err := reader.ReadLine()

		require.NoError(t, err)
		assert.Empty(t, line)
	})
}

func TestBoxRenderer_Render(t *testing.T) {
	t.Run("Draws the labelled grid", func(t *testing.T) {
		// Given: a grid with X on a1 and c3, O on b2
		var out bytes.Buffer
		renderer := NewBoxRenderer(&out)
		grid := entity.Grid{
			{entity.MarkX, entity.EmptyCell, entity.EmptyCell},
			{entity.EmptyCell, entity.MarkO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.MarkX},
		}

		// When: rendering it
		err := renderer.Render(grid)

		// Then: the box-drawing board is written
		require.NoError(t, err)
		expected := "     a b c\n" +
			"    ╔═╤═╤═╗\n" +
			"   1║X│ │ ║\n" +
			"    ╟─┼─┼─╢\n" +
			"   2║ │O│ ║\n" +
			"    ╟─┼─┼─╢\n" +
			"   3║ │ │X║\n" +
			"    ╚═╧═╧═╝\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Zero value cells render blank", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewBoxRenderer(&out).Render(entity.Grid{}))

		assert.Contains(t, out.String(), "   2║ │ │ ║\n")
	})

	t.Run("Reports write failures", func(t *testing.T) {
		err := NewBoxRenderer(failingWriter{}).Render(entity.Grid{})

		require.ErrorIs(t, err, errBrokenPipe)
	})
}

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	outerTopLeft     = '╔'
	outerTopRight    = '╗'
	outerBottomLeft  = '╚'
	outerBottomRight = '╝'
	outerHorizontal  = '═'
	outerTopJoint    = '╤'
	outerBottomJoint = '╧'
	outerVertical    = '║'
	outerLeftJoint   = '╟'
	outerRightJoint  = '╢'
	innerHorizontal  = '─'
	innerVertical    = '│'
	innerCross       = '┼'

	columnHeader = "     a b c"
	margin       = "    "
)

// BoxRenderer draws the grid with box-drawing characters, labelled a-c and 1-3.
type BoxRenderer struct {
	out io.Writer
}

func NewBoxRenderer(out io.Writer) *BoxRenderer {
	return &BoxRenderer{out: out}
}

func (that *BoxRenderer) Render(grid entity.Grid) error {
	var sb strings.Builder

	sb.WriteString(columnHeader + "\n")
	writeBorder(&sb, outerTopLeft, outerHorizontal, outerTopJoint, outerTopRight)

	for row, cells := range grid {
		if row > 0 {
			writeBorder(&sb, outerLeftJoint, innerHorizontal, innerCross, outerRightJoint)
		}

		fmt.Fprintf(&sb, "   %d%c", row+1, outerVertical)
		for col, cell := range cells {
			if col > 0 {
				sb.WriteRune(innerVertical)
			}
			if cell == "" {
				cell = entity.EmptyCell
			}
			sb.WriteString(cell)
		}
		sb.WriteRune(outerVertical)
		sb.WriteString("\n")
	}

	writeBorder(&sb, outerBottomLeft, outerHorizontal, outerBottomJoint, outerBottomRight)

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func writeBorder(sb *strings.Builder, left, fill, joint, right rune) {
	sb.WriteString(margin)
	sb.WriteRune(left)
	for col := range entity.BoardSize {
		if col > 0 {
			sb.WriteRune(joint)
		}
		sb.WriteRune(fill)
	}
	sb.WriteRune(right)
	sb.WriteString("\n")
}

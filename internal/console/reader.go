package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// LineReader reads newline-terminated input one line at a time.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(reader io.Reader) *LineReader {
	return &LineReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine - blocks until a full line is available and returns it without the line ending.
// A last line without a newline is still returned; after that apperror.ErrInputClosed is reported.
func (that *LineReader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

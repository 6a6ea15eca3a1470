package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

const positionPrompt = "Write X,Y coordinates of cell you want to mark (0,0 - top left):\n > "

var ErrReaderClosed = errors.New("console reader is closed")

// Reader reads prompted lines from a terminal. Lines are scanned on a background goroutine
// so that a blocked read can be abandoned when the context is done. Close stops the goroutine
// once its current read of in returns.
type Reader struct {
	out   io.Writer
	lines chan string
	err   error

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	that := &Reader{
		out:     out,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go that.scan(in)

	return that
}

// Close - releases the scanning goroutine. Later reads return ErrReaderClosed.
func (that *Reader) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Reader) scan(in io.Reader) {
	defer close(that.stopped)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-that.done:
			return
		}
	}

	that.err = scanner.Err()
	if that.err == nil {
		that.err = io.EOF
	}

	close(that.lines)
}

// ReadLine - prints prompt and waits for the next line.
func (that *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-that.done:
		return "", ErrReaderClosed
	default:
	}

	fmt.Fprint(that.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", ErrReaderClosed
	case line, ok := <-that.lines:
		if !ok {
			return "", that.err
		}

		return line, nil
	}
}

// ReadPosition - reads one "X,Y" line. Unparseable text yields apperror.ErrInvalidInput.
func (that *Reader) ReadPosition(ctx context.Context) (entity.Position, error) {
	line, err := that.ReadLine(ctx, positionPrompt)
	if err != nil {
		return entity.Position{}, err
	}

	return entity.ParsePosition(line)
}

// ReadGridSize - asks until a positive integer is entered.
func (that *Reader) ReadGridSize(ctx context.Context) (int, error) {
	for {
		line, err := that.ReadLine(ctx, "Set size of game grid: ")
		if err != nil {
			return 0, err
		}

		size, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}

		if size >= 1 {
			return size, nil
		}

		fmt.Fprintf(that.out, "No no no. Bad number. How do you expect to play with %d cells?\n", size)
	}
}

// Confirm - asks a [Y/n] question; only an answer starting with n or N means no.
func (that *Reader) Confirm(ctx context.Context, question string) (bool, error) {
	line, err := that.ReadLine(ctx, question+" [Y/n]? ")
	if err != nil {
		return false, err
	}

	answer := strings.TrimSpace(line)

	return !strings.HasPrefix(answer, "n") && !strings.HasPrefix(answer, "N"), nil
}

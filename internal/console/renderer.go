package console

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

const clearScreen = "\033[H\033[2J"

// Renderer draws frames as text:
//
//	      [Human]
//	+---+---+---+
//	| X |   | O |
//	+---+---+---+
type Renderer struct {
	out   io.Writer
	clear bool
}

// NewRenderer - clear controls whether the terminal is wiped before every drawn frame.
func NewRenderer(out io.Writer, clear bool) *Renderer {
	return &Renderer{out: out, clear: clear}
}

// Render - draws frames that ask for a redraw and ignores the rest.
func (that *Renderer) Render(frame tictactoe.Frame) {
	if !frame.Redraw {
		return
	}

	var sb strings.Builder

	if that.clear {
		sb.WriteString(clearScreen)
	}

	size := frame.Grid.Size()

	if current, ok := frame.Current(); ok && frame.State.IsPlaying() {
		writeCentered(&sb, "["+current.Name+"]", size)
	}

	writeGrid(&sb, frame)

	if frame.State.IsFinished() {
		if winner, ok := frame.Winner(); ok {
			sb.WriteString("   " + winner.Name + " WON!\n")
		} else {
			sb.WriteString("   TIE!\n")
		}
	}

	// rendering never affects the game
	_, _ = io.WriteString(that.out, sb.String())
}

// writeCentered - centers text over a grid that is 4*size+1 columns wide.
func writeCentered(sb *strings.Builder, text string, size int) {
	pad := max(size*2-runewidth.StringWidth(text)/2, 0)

	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(text)
	sb.WriteByte('\n')
}

func writeGrid(sb *strings.Builder, frame tictactoe.Frame) {
	size := frame.Grid.Size()
	separator := strings.Repeat("+---", size) + "+\n"

	for y := range size {
		sb.WriteString(separator)
		sb.WriteByte('|')

		for x := range size {
			// in bounds by construction
			owner, _ := frame.Grid.Get(entity.NewPosition(x, y))

			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(string(frame.Symbol(owner)), 1))
			sb.WriteString(" |")
		}

		sb.WriteByte('\n')
	}

	sb.WriteString(separator)
}

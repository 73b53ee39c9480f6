package model

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// both fields are two characters wide so a cell changing state never
	// shifts the rest of the row
	gridPosAlive = "1 "
	gridPosDead  = "  "

	cellWidth = len(gridPosAlive)

	ansiCursorHome  = "\033[H"
	ansiClearScreen = "\033[2J"
	ansiHideCursor  = "\033[?25l"
	ansiShowCursor  = "\033[?25h"
	ansiGreenOnBlk  = "\033[32;40m"
	ansiResetAttrs  = "\033[0m"
	ansiClearToEOL  = "\033[K"
)

// TerminalRenderer draws generations to a terminal, overwriting the previous
// frame in place
type TerminalRenderer struct {
	out   io.Writer
	fd    int
	tty   bool
	color bool
	buf   bytes.Buffer
}

// NewTerminalRenderer renders to out. Cursor and palette escape sequences are
// only emitted when out is a terminal.
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	r := &TerminalRenderer{out: out, fd: -1, color: color}
	if f, ok := out.(*os.File); ok {
		r.fd = int(f.Fd())
		r.tty = term.IsTerminal(r.fd)
	}
	return r
}

// IsTerminal reports whether the renderer writes to a terminal
func (r *TerminalRenderer) IsTerminal() bool {
	return r.tty
}

// Fits reports whether a grid of the given size fits in the terminal window.
// It returns true when the size can't be determined.
func (r *TerminalRenderer) Fits(rows, cols int) bool {
	if !r.tty {
		return true
	}
	width, height, err := term.GetSize(r.fd)
	if err != nil {
		return true
	}
	return cols*cellWidth <= width && rows <= height
}

// Start hides the cursor, applies the palette and clears the screen
func (r *TerminalRenderer) Start() error {
	if !r.tty {
		return nil
	}
	r.buf.Reset()
	r.buf.WriteString(ansiHideCursor)
	if r.color {
		r.buf.WriteString(ansiGreenOnBlk)
	}
	r.buf.WriteString(ansiClearScreen)
	r.buf.WriteString(ansiCursorHome)
	return r.flush("[Start]")
}

// Stop restores the cursor and default attributes
func (r *TerminalRenderer) Stop() error {
	if !r.tty {
		return nil
	}
	r.buf.Reset()
	r.buf.WriteString(ansiResetAttrs)
	r.buf.WriteString(ansiShowCursor)
	return r.flush("[Stop]")
}

// Display renders the grid followed by an optional status line in one write
func (r *TerminalRenderer) Display(g *Grid, status string) error {
	r.buf.Reset()
	if r.tty {
		r.buf.WriteString(ansiCursorHome)
	}
	r.buf.Grow(g.rows * (g.cols*cellWidth + 1))
	for row := range g.cells {
		for _, state := range g.cells[row] {
			if state == rules.Alive {
				r.buf.WriteString(gridPosAlive)
			} else {
				r.buf.WriteString(gridPosDead)
			}
		}
		r.buf.WriteByte('\n')
	}
	if status != "" {
		r.buf.WriteString(status)
		if r.tty {
			r.buf.WriteString(ansiClearToEOL)
		}
		r.buf.WriteByte('\n')
	}
	return r.flush("[Display]")
}

func (r *TerminalRenderer) flush(caller string) error {
	if _, err := r.out.Write(r.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "%s failed to write to terminal", caller)
	}
	return nil
}

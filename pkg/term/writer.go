package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/weftui/weft/pkg/logutil"
)

var logger = logutil.GetLogger("[term] ")

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Writer renders buffers to a terminal.
type Writer interface {
	// UpdateBuffer updates the terminal display to reflect the given buffer.
	// Rows that have not changed since the last update are skipped, unless
	// fullRefresh is true.
	UpdateBuffer(buf *Buffer, fullRefresh bool) error
	// ResetBuffer forgets the last written buffer, so that the next
	// UpdateBuffer repaints every row.
	ResetBuffer()
	// ClearScreen erases the terminal screen and places the cursor at the
	// top left corner.
	ClearScreen()
	// ShowCursor shows the cursor.
	ShowCursor()
	// HideCursor hides the cursor.
	HideCursor()
}

// NewWriter returns a Writer that writes VT100 sequences to the given
// io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{file: f}
}

type writer struct {
	file   io.Writer
	curBuf *Buffer
}

func (w *writer) ResetBuffer() {
	w.curBuf = nil
}

func (w *writer) UpdateBuffer(buf *Buffer, fullRefresh bool) error {
	if w.curBuf == nil || w.curBuf.Width != buf.Width || w.curBuf.Height != buf.Height {
		// Delta updates are only meaningful against a previous buffer of the
		// same size.
		fullRefresh = true
	}

	// Batch all writes into one buffer, so that we only write to the
	// terminal once.
	output := new(bytes.Buffer)

	// Hide the cursor while painting to minimize flickering.
	output.WriteString(hideCursor)

	// Style of the last written cell.
	style := ""
	switchStyle := func(newstyle string) {
		if newstyle != style {
			fmt.Fprintf(output, "\033[0;%sm", newstyle)
			style = newstyle
		}
	}
	writeCells := func(cs []Cell) {
		for _, c := range cs {
			switchStyle(c.Style.SGR())
			output.WriteString(c.Text)
		}
	}

	for y, line := range buf.Lines {
		if !fullRefresh {
			if eq, _ := compareRows(line, w.curBuf.Lines[y]); eq {
				continue
			}
		}
		// Move to the start of the row and repaint it whole. Rows always
		// span the full width, so no erase is needed.
		fmt.Fprintf(output, "\033[%d;1H", y+1)
		writeCells(line)
	}
	switchStyle("")

	_, err := w.file.Write(output.Bytes())
	if err != nil {
		return err
	}
	w.curBuf = buf
	return nil
}

func (w *writer) HideCursor() {
	fmt.Fprint(w.file, hideCursor)
}

func (w *writer) ShowCursor() {
	fmt.Fprint(w.file, showCursor)
}

func (w *writer) ClearScreen() {
	fmt.Fprint(w.file,
		"\033[H",  // move cursor to the top left corner
		"\033[2J", // clear entire screen
	)
	w.curBuf = nil
}

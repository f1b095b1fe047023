// Package render draws engine snapshots. Renderers observe the engine
// through the read-only Snapshot contract and never hold a reference into
// live grid state.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/golife/engine"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ANSI clear-screen followed by cursor-home.
	clearSequence = "\x1b[2J\x1b[H"
)

// Terminal renders snapshots as block characters on an io.Writer. Each frame
// is assembled in a pooled buffer and flushed with a single Write to keep
// terminal output from tearing mid-frame.
type Terminal struct {
	w       io.Writer
	buffers sync.Pool
}

// NewTerminal creates a renderer writing to w, typically os.Stdout.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w: w,
		buffers: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// Render writes one frame: a title line with the generation and population
// counts followed by the cell matrix, live cells as solid blocks.
func (t *Terminal) Render(snap engine.Snapshot) error {
	buf := t.buffers.Get().(*bytes.Buffer)
	buf.Reset()

	fmt.Fprintf(buf, "Generation %d | Population %d\n", snap.Generation, population(snap))
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			if snap.Cells[row][col] {
				buf.WriteString(gridPosBlock)
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}

	_, err := t.w.Write(buf.Bytes())
	t.buffers.Put(buf)
	return errors.Wrap(err, "[Render] failed to write frame")
}

// Clear erases the terminal and homes the cursor using ANSI escapes.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.w, clearSequence)
	return errors.Wrap(err, "[Clear] failed to write escape sequence")
}

func population(snap engine.Snapshot) (count int) {
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			if snap.Cells[row][col] {
				count++
			}
		}
	}
	return
}

// Package motview presents decoded motions: as text tables, as YAML, and as
// images of the root track that can be printed on a terminal or served over
// HTTP.
//
// This package has an API with no stability guarantees.
package motview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bradfitz/iter"
	"github.com/gookit/color"

	"badc0de.net/pkg/go-afteralive/mot"
)

const cellWidth = 8

var (
	headerStyle = color.New(color.FgCyan, color.OpBold)
	frameStyle  = color.New(color.FgYellow)
	titleStyle  = color.New(color.FgGreen, color.OpBold)
)

// column is one channel printed as a table column.
type column struct {
	name string
	at   func(frame uint8) (int64, bool)
}

func channel[V int16 | int32 | uint16](name string, ch map[uint8]V) column {
	return column{name: name, at: func(frame uint8) (int64, bool) {
		v, ok := ch[frame]
		return int64(v), ok
	}}
}

type tablePrinter struct {
	w       io.Writer
	colored bool
	err     error
}

func (tp *tablePrinter) printf(format string, args ...interface{}) {
	if tp.err != nil {
		return
	}
	_, tp.err = fmt.Fprintf(tp.w, format, args...)
}

func (tp *tablePrinter) styled(s color.Style, text string) string {
	if !tp.colored {
		return text
	}
	return s.Render(text)
}

// table prints one row per frame in [0, span) for which any column has a
// value. Missing values are printed as "-".
func (tp *tablePrinter) table(span int, cols []column) {
	row := tp.styled(headerStyle, fmt.Sprintf("%*s", cellWidth, "frame"))
	for _, c := range cols {
		row += tp.styled(headerStyle, fmt.Sprintf("%*s", cellWidth, c.name))
	}
	tp.printf("%s\n", row)

	for f := range iter.N(span) {
		frame := uint8(f)
		filled := false
		row := tp.styled(frameStyle, fmt.Sprintf("%*d", cellWidth, f))
		for _, c := range cols {
			cell := "-"
			if v, ok := c.at(frame); ok {
				cell = strconv.FormatInt(v, 10)
				filled = true
			}
			row += fmt.Sprintf("%*s", cellWidth, cell)
		}
		if filled {
			tp.printf("%s\n", row)
		}
	}
}

// WriteTable writes a human-readable dump of the motion: the step count, the
// root channels, then the channels of each part in ascending part ID order.
func WriteTable(w io.Writer, m *mot.Motion, colored bool) error {
	tp := &tablePrinter{w: w, colored: colored}
	span := m.FrameSpan()

	tp.printf("%s\n", tp.styled(titleStyle, fmt.Sprintf("motion: %d steps, %d frames, %d parts", m.StepCount, span, len(m.Parts))))
	if len(m.KeyFrames)+len(m.PosX)+len(m.PosY) > 0 {
		tp.table(span, []column{
			channel("key", m.KeyFrames),
			channel("x", m.PosX),
			channel("y", m.PosY),
		})
	}

	for _, id := range m.PartIDs() {
		p := m.Parts[id]
		tp.printf("%s\n", tp.styled(titleStyle, fmt.Sprintf("part %d", id)))
		if p.Empty() {
			continue
		}
		tp.table(span, []column{
			channel("dir", p.Directions),
			channel("dist", p.Distances),
			channel("angle", p.Angles),
			channel("pic", p.Pictures),
			channel("sx", p.ScaleX),
			channel("sy", p.ScaleY),
		})
	}
	return tp.err
}

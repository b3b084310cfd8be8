// Package fixedwidth builds fixed-offset text records slot by slot.
// Every slot is forced to its exact width at append time, so a finished line
// can only be the wrong length if the layout itself was declared wrong; Build
// surfaces that as an error rather than letting a bad record reach the wire.
package fixedwidth

import (
	"fmt"
	"strings"
)

// PadLeft fills value to width from the left. Oversized values keep their
// rightmost width bytes.
func PadLeft(value string, width int, fill byte) string {
	if len(value) >= width {
		return value[len(value)-width:]
	}
	return strings.Repeat(string(fill), width-len(value)) + value
}

// PadRight fills value to width from the right. Oversized values keep their
// leftmost width bytes.
func PadRight(value string, width int, fill byte) string {
	if len(value) >= width {
		return value[:width]
	}
	return value + strings.Repeat(string(fill), width-len(value))
}

// Line accumulates slots for one fixed-width record.
type Line struct {
	b     strings.Builder
	width int
}

// NewLine starts a record that must finish at exactly width bytes.
func NewLine(width int) *Line {
	l := &Line{width: width}
	l.b.Grow(width)
	return l
}

// Left appends a zero-style slot: left-filled, right-aligned.
func (l *Line) Left(value string, width int, fill byte) *Line {
	l.b.WriteString(PadLeft(value, width, fill))
	return l
}

// Right appends a text-style slot: right-filled, left-aligned.
func (l *Line) Right(value string, width int, fill byte) *Line {
	l.b.WriteString(PadRight(value, width, fill))
	return l
}

// Int appends a zero-padded numeric slot.
func (l *Line) Int(value int, width int) *Line {
	return l.Left(fmt.Sprintf("%d", value), width, '0')
}

// Literal appends mandated bytes verbatim.
func (l *Line) Literal(s string) *Line {
	l.b.WriteString(s)
	return l
}

// Spaces appends a reserved filler slot.
func (l *Line) Spaces(n int) *Line {
	l.b.WriteString(strings.Repeat(" ", n))
	return l
}

// Zeros appends a zeroed filler slot.
func (l *Line) Zeros(n int) *Line {
	l.b.WriteString(strings.Repeat("0", n))
	return l
}

// Build returns the finished record, failing if the accumulated slots do not
// land exactly on the declared width.
func (l *Line) Build() (string, error) {
	s := l.b.String()
	if len(s) != l.width {
		return "", fmt.Errorf("fixed-width record is %d bytes, layout requires %d", len(s), l.width)
	}
	return s, nil
}

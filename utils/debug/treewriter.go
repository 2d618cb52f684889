// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented text tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	tw.w.WriteString(strings.Repeat(indent, max(depth, 0)))
}

// Line writes formatted line at requested depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line, strings are quoted so empty and
// whitespace only values stay visible.
func (tw *TreeWriter) Field(depth int, label string, value any) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	switch v := value.(type) {
	case string:
		tw.w.WriteString(strconv.Quote(v))
	default:
		fmt.Fprint(tw.w, v)
	}
	tw.w.WriteByte('\n')
}

// List writes "label: [a b c]" line or "label: -" for empty list.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	if len(items) == 0 {
		tw.w.WriteString(": -\n")
		return
	}
	tw.w.WriteString(": [")
	tw.w.WriteString(strings.Join(items, " "))
	tw.w.WriteString("]\n")
}

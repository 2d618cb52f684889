package compose

import (
	"readmesvg/utils/debug"
)

// Plan returns human readable description of the composite: where each
// fragment goes and what it contributes.
func Plan(comp *Composite) string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "composite %dx%d, %d fragments", comp.Width, comp.Height, len(comp.Sections))
	for i, sec := range comp.Sections {
		tw.Line(1, "[%d] %s @ y=%d", i, sec.Name, sec.YOffset)
		tw.Field(2, "file", sec.Path)
		if sec.Sheet != nil {
			tw.Field(2, "style rules", len(sec.Sheet.Rules))
			tw.List(2, "keyframes", sec.Sheet.Keyframes)
		}
		tw.List(2, "definitions", sec.Defs.Kept)
		tw.List(2, "duplicates dropped", sec.Defs.Dropped)
		tw.Field(2, "body chars", len([]rune(sec.Body)))
	}
	if len(comp.Collisions) > 0 {
		tw.Line(0, "style collisions")
		for _, c := range comp.Collisions {
			tw.Line(1, "%s", c)
		}
	}
	return tw.String()
}

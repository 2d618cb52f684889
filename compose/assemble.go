package compose

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nsSVG   = "http://www.w3.org/2000/svg"
	nsXlink = "http://www.w3.org/1999/xlink"
)

// assemble produces composite document text:
//
//	<svg> root of configured size
//	  <defs> merged styles, then deduplicated definitions
//	  background <rect>
//	  per fragment: comment + <g transform="translate(0, y)"> with body
func assemble(comp *Composite, background string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="%s"`,
		comp.Width, comp.Height, comp.Width, comp.Height, nsSVG)
	for _, ns := range comp.Namespaces {
		// value is copied as written, only quote may need escaping
		fmt.Fprintf(&sb, ` xmlns:%s="%s"`, ns.Prefix, strings.ReplaceAll(ns.URI, `"`, "&quot;"))
	}
	sb.WriteString(">\n")

	sb.WriteString("<defs>\n<style>\n")
	for i, sec := range comp.Sections {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "/* === %s === */\n%s", sec.Name, sec.Style)
	}
	sb.WriteString("\n</style>\n")
	for _, sec := range comp.Sections {
		if sec.Defs.Defs != "" {
			sb.WriteString(sec.Defs.Defs)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("</defs>\n\n")

	fmt.Fprintf(&sb, "<rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n\n",
		comp.Width, comp.Height, html.EscapeString(background))

	upper := cases.Upper(language.Und)
	for _, sec := range comp.Sections {
		fmt.Fprintf(&sb, "<!-- === %s === -->\n", upper.String(sec.Name))
		fmt.Fprintf(&sb, "<g transform=\"translate(0, %d)\">\n%s\n</g>\n\n", sec.YOffset, sec.Body)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

package compose

import (
	"regexp"
	"strings"
)

// Fragments are hand written and well formed, so regions are located with
// patterns rather than by parsing. All patterns are non greedy and span lines.
// Opening tags of regions never match self-closing (empty) elements, those are
// handled separately.
var (
	reStyle      = regexp.MustCompile(`(?s)<style(?:\s[^>]*[^/>]|\s+)?>(.*?)</style\s*>`)
	reDefs       = regexp.MustCompile(`(?s)<defs(?:\s[^>]*[^/>]|\s+)?>(.*?)</defs\s*>`)
	reEmptyStyle = regexp.MustCompile(`<style\b[^>]*/>`)
	reEmptyDefs  = regexp.MustCompile(`<defs\b[^>]*/>`)
	reProlog     = regexp.MustCompile(`(?s)<\?xml\b.*?\?>`)
	reDoctype    = regexp.MustCompile(`(?is)<!DOCTYPE\b[^>\[]*(?:\[.*?\])?\s*>`)
	reRootOpen   = regexp.MustCompile(`<svg\b[^>]*>`)
	reRootEnd    = regexp.MustCompile(`</svg\s*>`)
	reXlink      = regexp.MustCompile(`\sxlink:[a-zA-Z]+\s*=`)
	reNSDecl     = regexp.MustCompile(`\sxmlns:([A-Za-z_][\w.-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// ExtractStyle returns trimmed content of the first style region or empty
// string if fragment has none.
func ExtractStyle(text string) string {
	if m := reStyle.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractDefs returns trimmed content of the first definitions region with
// style regions removed or empty string if fragment has none.
func ExtractDefs(text string) string {
	m := reDefs.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	defs := reStyle.ReplaceAllString(m[1], "")
	defs = reEmptyStyle.ReplaceAllString(defs, "")
	return strings.TrimSpace(defs)
}

// ExtractBody returns fragment markup without prolog, root container tags
// and definitions.
func ExtractBody(text string) string {
	body := reProlog.ReplaceAllString(text, "")
	body = reDoctype.ReplaceAllString(body, "")
	// definitions go first so that nested <svg> inside them does not confuse
	// root tags lookup
	body = reDefs.ReplaceAllString(body, "")
	body = reEmptyDefs.ReplaceAllString(body, "")
	body = reEmptyStyle.ReplaceAllString(body, "")

	// only root container is removed, nested <svg> elements are content
	if loc := reRootOpen.FindStringIndex(body); loc != nil {
		body = body[:loc[0]] + body[loc[1]:]
	}
	if all := reRootEnd.FindAllStringIndex(body, -1); len(all) > 0 {
		loc := all[len(all)-1]
		body = body[:loc[0]] + body[loc[1]:]
	}
	return strings.TrimSpace(body)
}

// usesXlink reports if fragment has attributes in xlink namespace, composite
// root must declare it then.
func usesXlink(text string) bool {
	return reXlink.MatchString(text)
}

// Namespace is a prefixed namespace declaration.
type Namespace struct {
	Prefix string
	URI    string
}

// rootNamespaces returns prefixed namespace declarations of the fragment root
// element. Root tag is removed from the body, so its declarations have to be
// carried over to the composite root.
func rootNamespaces(text string) []Namespace {
	text = reProlog.ReplaceAllString(text, "")
	text = reDoctype.ReplaceAllString(text, "")
	root := reRootOpen.FindString(text)
	if root == "" {
		return nil
	}
	var res []Namespace
	for _, m := range reNSDecl.FindAllStringSubmatch(root, -1) {
		uri := m[2]
		if uri == "" {
			uri = m[3]
		}
		res = append(res, Namespace{Prefix: m[1], URI: uri})
	}
	return res
}

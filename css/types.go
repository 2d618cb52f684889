// Package css inventories style rules of SVG fragments so that conflicts
// introduced by merging several stylesheets into one can be reported.
package css

import (
	"slices"
	"strings"
)

// Rule is a single ruleset. Grouped selectors produce one rule with several
// selectors.
type Rule struct {
	Selectors  []string
	Properties []string // property names in declaration order
	Media      string   // enclosing @media query, empty for top level rules
}

// Stylesheet is an inventory of one style block.
type Stylesheet struct {
	Source    string
	Rules     []Rule
	Keyframes []string // names of @keyframes animations
	Warnings  []string
}

// Selectors returns all top level selectors of the stylesheet, each once, in
// order of appearance.
func (s *Stylesheet) Selectors() []string {
	seen := make(map[string]struct{})
	var res []string
	for _, r := range s.Rules {
		if r.Media != "" {
			continue
		}
		for _, sel := range r.Selectors {
			if _, ok := seen[sel]; ok {
				continue
			}
			seen[sel] = struct{}{}
			res = append(res, sel)
		}
	}
	return res
}

// Collision describes a name defined by more than one stylesheet.
type Collision struct {
	Kind    string // "selector" or "keyframes"
	Name    string
	Sources []string
}

func (c Collision) String() string {
	return c.Kind + " " + c.Name + " defined in " + strings.Join(c.Sources, ", ")
}

// FindCollisions reports selectors and animation names which are defined in
// more than one stylesheet. When styles are merged into a single document
// later definition silently wins, so such names are likely to be a mistake.
// Stylesheets with the same source (the same fragment used several times) are
// not compared with each other.
func FindCollisions(sheets []*Stylesheet) []Collision {
	var res []Collision
	res = append(res, collide("selector", sheets, (*Stylesheet).Selectors)...)
	res = append(res, collide("keyframes", sheets, func(s *Stylesheet) []string { return s.Keyframes })...)
	return res
}

func collide(kind string, sheets []*Stylesheet, names func(*Stylesheet) []string) []Collision {
	var (
		order   []string
		sources = make(map[string][]string)
	)
	for _, s := range sheets {
		for _, n := range names(s) {
			srcs, known := sources[n]
			if !known {
				order = append(order, n)
			}
			if !slices.Contains(srcs, s.Source) {
				sources[n] = append(srcs, s.Source)
			}
		}
	}

	var res []Collision
	for _, n := range order {
		if len(sources[n]) > 1 {
			res = append(res, Collision{Kind: kind, Name: n, Sources: sources[n]})
		}
	}
	return res
}

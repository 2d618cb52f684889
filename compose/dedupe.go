package compose

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"readmesvg/config"
)

// IDSet accumulates definition identifiers across fragments in composition
// order.
type IDSet map[string]struct{}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// DedupeResult describes what happened to definitions of a single fragment.
type DedupeResult struct {
	Defs    string
	Kept    []string // identifiers first seen in this fragment
	Dropped []string // identifiers removed as already defined earlier
}

// Deduper removes definitions whose identifiers were already seen in previous
// fragments. First seen wins, later duplicates are dropped entirely.
type Deduper struct {
	mode config.DedupeMode
	seen IDSet
	log  *zap.Logger
}

func NewDeduper(mode config.DedupeMode, log *zap.Logger) *Deduper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deduper{mode: mode, seen: make(IDSet), log: log.Named("dedupe")}
}

// Seen returns accumulated identifiers. Set is shared, not copied.
func (d *Deduper) Seen() IDSet {
	return d.seen
}

// Dedupe processes definitions text of the next fragment, updating the set of
// seen identifiers.
func (d *Deduper) Dedupe(defs, source string) DedupeResult {
	if strings.TrimSpace(defs) == "" {
		return DedupeResult{}
	}
	if d.mode == config.DedupeModeStructural {
		res, err := dedupeStructural(defs, d.seen)
		if err == nil {
			d.report(source, res)
			return res
		}
		d.log.Warn("Unable to parse definitions, falling back to textual removal",
			zap.String("fragment", source), zap.Error(err))
	}
	res := dedupeTextual(defs, d.seen)
	d.report(source, res)
	return res
}

func (d *Deduper) report(source string, res DedupeResult) {
	if len(res.Dropped) > 0 {
		d.log.Debug("Duplicate definitions removed", zap.String("fragment", source), zap.Strings("ids", res.Dropped))
	}
}

var reID = regexp.MustCompile(`id="([^"]+)"`)

// dedupeTextual removes duplicates with single pass pattern substitution.
// It does not understand markup: element with nested content is cut at the
// first closing tag, and an identifier repeated within one fragment removes
// all its occurrences including the first one.
func dedupeTextual(defs string, seen IDSet) DedupeResult {
	var res DedupeResult
	for _, m := range reID.FindAllStringSubmatch(defs, -1) {
		id := m[1]
		if seen.Has(id) {
			re := regexp.MustCompile(`(?s)<[^>]+id="` + regexp.QuoteMeta(id) + `"[^/]*/?>(?:.*?</[^>]+>)?`)
			defs = re.ReplaceAllString(defs, "")
			res.Dropped = append(res.Dropped, id)
			continue
		}
		seen.Add(id)
		res.Kept = append(res.Kept, id)
	}
	res.Defs = defs
	return res
}

const defsWrapper = "defs"

// dedupeStructural parses definitions and removes duplicate elements together
// with their content. Identifiers inside removed subtree are not registered.
// Text is returned untouched when nothing has to be removed.
func dedupeStructural(defs string, seen IDSet) (DedupeResult, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Entity:        namedEntities,
		ValidateInput: false,
		Permissive:    true,
	}
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	if err := doc.ReadFromString("<" + defsWrapper + ">" + defs + "</" + defsWrapper + ">"); err != nil {
		return DedupeResult{}, fmt.Errorf("unable to parse definitions: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != defsWrapper {
		return DedupeResult{}, errors.New("unexpected definitions structure")
	}

	var (
		res    DedupeResult
		remove []*etree.Element
		walk   func(el *etree.Element)
	)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if id := child.SelectAttrValue("id", ""); id != "" {
				if seen.Has(id) {
					res.Dropped = append(res.Dropped, id)
					remove = append(remove, child)
					continue
				}
				seen.Add(id)
				res.Kept = append(res.Kept, id)
			}
			walk(child)
		}
	}
	walk(root)

	if len(remove) == 0 {
		res.Defs = defs
		return res, nil
	}
	for _, el := range remove {
		parent := el.Parent()
		// indentation in front of removed element would leave blank line
		if i := el.Index(); i > 0 {
			if cd, ok := parent.Child[i-1].(*etree.CharData); ok && cd.IsWhitespace() {
				parent.RemoveChildAt(i - 1)
			}
		}
		parent.RemoveChild(el)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return DedupeResult{}, fmt.Errorf("unable to serialize definitions: %w", err)
	}
	out = strings.TrimPrefix(out, "<"+defsWrapper+">")
	out = strings.TrimSuffix(out, "</"+defsWrapper+">")
	if out == "<"+defsWrapper+"/>" {
		out = ""
	}
	res.Defs = strings.TrimSpace(out)
	return res, nil
}

// namedEntities are HTML entities hand written SVG tends to use, XML knows
// only five predefined ones.
var namedEntities = map[string]string{
	"nbsp":   "\u00a0",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
	"middot": "·",
	"bull":   "•",
	"rarr":   "→",
	"larr":   "←",
	"laquo":  "«",
	"raquo":  "»",
}

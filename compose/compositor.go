// Package compose merges SVG fragments into a single composite image.
//
// Every fragment contributes its style block, its definitions and its body.
// Styles and definitions from all fragments end up in one <defs> section of
// the composite, bodies are placed one under another each shifted by
// configured vertical offset. Layout is static: offsets and composite height
// come from configuration and are never computed from fragment content.
package compose

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"readmesvg/archive"
	"readmesvg/config"
	"readmesvg/css"
)

// Section is a fragment prepared for composition.
type Section struct {
	Name    string
	Path    string
	Data    []byte // fragment as read
	YOffset int
	Style   string
	Sheet   *css.Stylesheet
	Defs    DedupeResult
	Body    string
}

// Composite is the result of composition.
type Composite struct {
	Width      int
	Height     int
	Sections   []Section
	Collisions []css.Collision
	Namespaces []Namespace // prefixed namespaces declared on composite root
	Text       string
}

// Compositor performs single composition run.
type Compositor struct {
	cfg *config.CompositeConfig
	log *zap.Logger
}

func New(cfg *config.CompositeConfig, log *zap.Logger) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{cfg: cfg, log: log}
}

// Compose loads all fragments in configured order and assembles composite
// text. It stops at the first fragment which cannot be read, nothing is
// written to disk here.
func (c *Compositor) Compose(ctx context.Context) (*Composite, error) {
	bundle, err := archive.Open(c.cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	defer bundle.Close()

	var (
		deduper = NewDeduper(c.cfg.Dedupe, c.log)
		parser  = css.NewParser(c.log)
		xlink   bool
		nsURI   = make(map[string]string)
	)

	comp := &Composite{
		Width:    c.cfg.Width,
		Height:   c.cfg.Height,
		Sections: make([]Section, 0, len(c.cfg.Fragments)),
	}

	for _, f := range c.cfg.Fragments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := bundle.Location(f.File)
		data, err := bundle.ReadFile(f.File)
		if err == nil {
			data, err = toUTF8(data)
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read fragment %q: %w", f.Name, err)
		}
		text := string(data)

		sec := Section{
			Name:    f.Name,
			Path:    path,
			Data:    data,
			YOffset: f.YOffset,
			Style:   ExtractStyle(text),
			Body:    ExtractBody(text),
		}
		sec.Sheet = parser.Parse([]byte(sec.Style), f.Name)
		sec.Defs = deduper.Dedupe(ExtractDefs(text), f.Name)
		xlink = xlink || usesXlink(text)
		for _, ns := range rootNamespaces(text) {
			if uri, ok := nsURI[ns.Prefix]; ok {
				if uri != ns.URI {
					c.log.Warn("Namespace prefix is bound differently by several fragments, the first binding wins",
						zap.String("fragment", f.Name), zap.String("prefix", ns.Prefix), zap.String("uri", ns.URI), zap.String("kept", uri))
				}
				continue
			}
			nsURI[ns.Prefix] = ns.URI
			comp.Namespaces = append(comp.Namespaces, ns)
		}

		c.log.Debug("Fragment loaded",
			zap.String("name", f.Name),
			zap.String("file", path),
			zap.Int("y", f.YOffset),
			zap.Int("style", len(sec.Style)),
			zap.Strings("ids", sec.Defs.Kept),
			zap.Int("body", len(sec.Body)))

		comp.Sections = append(comp.Sections, sec)
	}

	sheets := make([]*css.Stylesheet, 0, len(comp.Sections))
	for _, sec := range comp.Sections {
		sheets = append(sheets, sec.Sheet)
	}
	comp.Collisions = css.FindCollisions(sheets)
	if c.cfg.StyleCollisions == config.CollisionModeWarn {
		for _, col := range comp.Collisions {
			c.log.Warn("Style is defined by several fragments, the last definition wins",
				zap.String("kind", col.Kind), zap.String("name", col.Name), zap.Strings("fragments", col.Sources))
		}
	}

	if _, ok := nsURI["xlink"]; xlink && !ok {
		comp.Namespaces = append(comp.Namespaces, Namespace{Prefix: "xlink", URI: nsXlink})
	}

	comp.Text = assemble(comp, c.cfg.Background)
	return comp, nil
}

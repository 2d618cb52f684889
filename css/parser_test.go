package css_test

import (
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"readmesvg/css"
)

func TestParser_Parse(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	sheet := p.Parse([]byte(`
		.title { fill: #58a6ff; font-family: monospace; }
		.muted, .dim { fill: #8b949e }
		@keyframes blink { 0% { opacity: 1 } 50% { opacity: 0 } }
		@media (prefers-reduced-motion: reduce) { .cursor { animation: none } }
		.cursor { animation: blink 1s step-end infinite; --accent: #fff; }
	`), "terminal")

	if sheet.Source != "terminal" {
		t.Errorf("Source = %q", sheet.Source)
	}
	if len(sheet.Rules) != 4 {
		t.Fatalf("got %d rules, want 4: %+v", len(sheet.Rules), sheet.Rules)
	}

	first := sheet.Rules[0]
	if !slices.Equal(first.Selectors, []string{".title"}) {
		t.Errorf("first selectors = %v", first.Selectors)
	}
	if !slices.Equal(first.Properties, []string{"fill", "font-family"}) {
		t.Errorf("first properties = %v", first.Properties)
	}
	if !slices.Equal(sheet.Rules[1].Selectors, []string{".muted", ".dim"}) {
		t.Errorf("grouped selectors = %v", sheet.Rules[1].Selectors)
	}
	if sheet.Rules[2].Media == "" {
		t.Error("rule inside @media must remember its query")
	}
	if !slices.Equal(sheet.Keyframes, []string{"blink"}) {
		t.Errorf("Keyframes = %v, want [blink]", sheet.Keyframes)
	}

	// rules inside @media are not top level selectors
	if got := sheet.Selectors(); !slices.Equal(got, []string{".title", ".muted", ".dim", ".cursor"}) {
		t.Errorf("Selectors() = %v", got)
	}
}

func TestParser_ParseEmpty(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte("  \n "), "divider")
	if len(sheet.Rules) != 0 || len(sheet.Keyframes) != 0 {
		t.Errorf("empty style must produce empty inventory: %+v", sheet)
	}
}

func TestFindCollisions(t *testing.T) {
	p := css.NewParser(nil)
	sheets := []*css.Stylesheet{
		p.Parse([]byte(`.title { fill: red } @keyframes fade { to { opacity: 0 } }`), "header"),
		p.Parse([]byte(`.line { stroke: gray }`), "divider"),
		p.Parse([]byte(`.title { fill: blue } .body { fill: white }`), "about"),
		// same fragment used again must not collide with itself
		p.Parse([]byte(`.line { stroke: gray }`), "divider"),
		p.Parse([]byte(`@keyframes fade { from { opacity: 1 } }`), "footer"),
	}

	got := css.FindCollisions(sheets)
	if len(got) != 2 {
		t.Fatalf("got %d collisions, want 2: %v", len(got), got)
	}

	if got[0].Kind != "selector" || got[0].Name != ".title" || !slices.Equal(got[0].Sources, []string{"header", "about"}) {
		t.Errorf("selector collision = %+v", got[0])
	}
	if got[1].Kind != "keyframes" || got[1].Name != "fade" || !slices.Equal(got[1].Sources, []string{"header", "footer"}) {
		t.Errorf("keyframes collision = %+v", got[1])
	}
	if s := got[0].String(); s != "selector .title defined in header, about" {
		t.Errorf("String() = %q", s)
	}
}

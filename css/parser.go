package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser builds stylesheet inventories. It never fails: anything it does not
// understand is skipped and noted in warnings.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse inventories style block text. Source names the fragment the block
// came from.
func (p *Parser) Parse(data []byte, source string) *Stylesheet {
	sheet := &Stylesheet{Source: source}
	if len(bytes.TrimSpace(data)) == 0 {
		return sheet
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				sheet.Warnings = append(sheet.Warnings, err.Error())
				p.log.Debug("CSS parse error", zap.String("source", source), zap.Error(err))
			}
			p.log.Debug("Parsed CSS", zap.String("source", source),
				zap.Int("rules", len(sheet.Rules)), zap.Strings("keyframes", sheet.Keyframes))
			return sheet

		case css.BeginAtRuleGrammar:
			switch name := string(data); name {
			case "@media":
				p.parseMedia(parser, sheet, tokensText(parser.Values()))
			case "@keyframes", "@-webkit-keyframes":
				if kf := tokensText(parser.Values()); kf != "" {
					sheet.Keyframes = append(sheet.Keyframes, kf)
				}
				skipBlock(parser)
			default:
				p.log.Debug("Skipping @-rule", zap.String("source", source), zap.String("rule", name))
				skipBlock(parser)
			}

		case css.AtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("source", source), zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			sheet.Rules = append(sheet.Rules, p.parseRuleset(parser, data, ""))
		}
	}
}

func (p *Parser) parseMedia(parser *css.Parser, sheet *Stylesheet, query string) {
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return
		case css.BeginRulesetGrammar:
			sheet.Rules = append(sheet.Rules, p.parseRuleset(parser, data, query))
		case css.BeginAtRuleGrammar:
			skipBlock(parser)
		}
	}
}

// parseRuleset consumes declarations up to the end of the ruleset.
func (p *Parser) parseRuleset(parser *css.Parser, data []byte, media string) Rule {
	rule := Rule{Selectors: splitSelectors(data, parser.Values()), Media: media}
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return rule
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			rule.Properties = append(rule.Properties, string(data))
		}
	}
}

// skipBlock skips tokens until the matching end of an @-rule block.
func skipBlock(parser *css.Parser) {
	for depth := 1; depth > 0; {
		switch gt, _, _ := parser.Next(); gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// splitSelectors builds selector list of a ruleset, grouped selectors are
// split on commas and whitespace inside each selector is normalized.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func tokensText(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

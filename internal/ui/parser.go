package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a stylesheet: compound selectors (type, #id, .class),
// comma-separated selector lists and "key: value;" declarations. At-rules and
// their contents are skipped, as are selectors with combinators. Rules are
// ordered by specificity, later rules winning ties.
// Syntax errors do not stop parsing; the first one is returned with the rules
// that did parse.
func ParseCSS(content string) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInputString(content), false)
	sheet := &Stylesheet{}
	var (
		firstErr  error
		current   []Rule
		atDepth   int
		order     int
		inRuleset bool
	)
	note := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				sortRules(sheet.Rules)
				return sheet, firstErr
			}
			var perr *parse.Error
			if !errors.As(err, &perr) {
				return sheet, fmt.Errorf("ui: css: %w", err)
			}
			note(fmt.Errorf("ui: css: %w", err))
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			current = current[:0]
			props := make(map[string]string)
			for _, raw := range selectorList(p.Values()) {
				sel, err := ParseSelector(raw)
				if err != nil {
					note(err)
					continue
				}
				current = append(current, Rule{Selector: sel, Props: props, order: order})
				order++
			}
			inRuleset = true
		case css.DeclarationGrammar:
			if !inRuleset || atDepth > 0 || len(current) == 0 {
				continue
			}
			key := strings.ToLower(string(data))
			val := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tokensString(p.Values())), "!important"))
			current[0].Props[key] = val
		case css.EndRulesetGrammar:
			if inRuleset && atDepth == 0 {
				sheet.Rules = append(sheet.Rules, current...)
			}
			current = current[:0]
			inRuleset = false
		}
	}
}

// selectorList splits a ruleset prelude at top-level commas.
func selectorList(toks []css.Token) []string {
	var (
		out   []string
		start int
		level int
	)
	for i, t := range toks {
		switch t.TokenType {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			level++
		case css.RightParenthesisToken, css.RightBracketToken:
			level--
		case css.CommaToken:
			if level == 0 {
				out = append(out, tokensString(toks[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, tokensString(toks[start:]))
}

func tokensString(toks []css.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func sortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		si, sj := rules[i].Selector.Specificity(), rules[j].Selector.Specificity()
		if si != sj {
			return si < sj
		}
		return rules[i].order < rules[j].order
	})
}

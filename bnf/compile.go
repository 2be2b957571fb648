package bnf

import (
	"fmt"

	pc "github.com/avrilgo/parsec"
)

// TermRule is one element of a rule alternative's term sequence: a
// Literal or a RuleRef.
type TermRule interface {
	term()
}

// Literal is a quoted string term matched verbatim.
type Literal string

// RuleRef is a "<name>" term referring to another rule in the map.
type RuleRef string

func (Literal) term() {}
func (RuleRef) term() {}

// Rule is a single named production: its right-hand side, as a set
// of alternatives, each of which is an ordered sequence of terms.
type Rule struct {
	Name         string
	Alternatives [][]TermRule
}

// RuleMap holds every rule a compiled grammar can reference, keyed by
// name. Built-in EOL is always present alongside the user's rules.
type RuleMap map[string]Rule

var eolRule = Rule{
	Name: "EOL",
	Alternatives: [][]TermRule{
		{Literal("\n")},
		{Literal("\r\n")},
	},
}

// FromBNF parses grammarText, builds its rule map, and compiles
// mainRule into a Parser[ParseNode]. A malformed grammar is reported
// through the error return; an undefined mainRule, or any undefined
// rule reachable from it, is not caught here — per the BNF compiler's
// deferred-lookup discipline it surfaces only once the returned
// parser is applied to input.
func FromBNF(grammarText string, mainRule string) (pc.Parser[ParseNode], error) {
	rules, err := parseGrammar(grammarText)
	if err != nil {
		return nil, fmt.Errorf("bnf: malformed grammar: %w", err)
	}

	rm := make(RuleMap, len(rules)+1)
	for _, r := range rules {
		rm[r.Name] = r
	}

	rm[eolRule.Name] = eolRule

	return compileRule(rm, mainRule), nil
}

// compileRule returns the (lazily built, memoised) parser for the
// named rule, deferring the rule-map lookup until the parser is
// actually applied so that forward and cyclic references resolve
// without recursing at construction time.
func compileRule(rm RuleMap, name string) pc.Parser[ParseNode] {
	return pc.Lazy(func() pc.Parser[ParseNode] {
		r, ok := rm[name]
		if !ok {
			return undefinedRule(name)
		}

		alts := make([]pc.Parser[[]ParseNode], len(r.Alternatives))
		for i, alt := range r.Alternatives {
			alts[i] = compileList(rm, alt)
		}

		return pc.Lift(
			func(children []ParseNode) ParseNode {
				return RuleNode{Name: name, Children: children}
			},
			pc.Best(alts...),
		)
	})
}

func undefinedRule(name string) pc.Parser[ParseNode] {
	return func(*pc.Scanner) (ParseNode, error) {
		return nil, fmt.Errorf("bnf: undefined rule <%s>", name)
	}
}

// compileList compiles a single alternative's term sequence into a
// parser producing its children in order.
func compileList(rm RuleMap, terms []TermRule) pc.Parser[[]ParseNode] {
	ps := make([]pc.Parser[ParseNode], len(terms))
	for i, t := range terms {
		ps[i] = compileTerm(rm, t)
	}

	return pc.List(ps)
}

func compileTerm(rm RuleMap, t TermRule) pc.Parser[ParseNode] {
	switch v := t.(type) {
	case Literal:
		text := string(v)
		return pc.Lift(
			func(s string) ParseNode { return LiteralNode{Text: s} },
			pc.String(text),
		)
	case RuleRef:
		return compileRule(rm, string(v))
	default:
		panic(fmt.Sprintf("bnf: unhandled term type %T", t))
	}
}

package bnf

import (
	"unicode"

	pc "github.com/avrilgo/parsec"
)

// optWS matches whitespace other than the line terminators that
// separate rules, per the grammar's own OptWS production.
var optWS = pc.SkipMany(pc.Satisfy(func(r rune) bool {
	return unicode.IsSpace(r) && r != '\n' && r != '\r'
}))

// eol matches "\r\n" or "\n". "\r\n" is tried first so the longer
// sequence isn't cut short by the shorter one matching its prefix.
var eol = pc.Or(pc.MatchString("\r\n"), pc.MatchString("\n"))

func isRuleNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
}

// ruleNameText matches the bracketed "<name>" token on its own,
// stripped of the angle brackets, with no surrounding whitespace
// consumed. Used both as a Term and inside ruleName below.
var ruleNameText = pc.Wrap(pc.Rune('<'), pc.TakeWhile1(isRuleNameRune), pc.Rune('>'))

// ruleName is RuleName: OptWS '<' name '>' OptWS.
var ruleName = pc.DiscardRight(pc.DiscardLeft(optWS, ruleNameText), optWS)

func unquote(open, close rune) pc.Parser[string] {
	return pc.Wrap(
		pc.Rune(open),
		pc.TakeWhile(func(r rune) bool { return r != close }),
		pc.Rune(close),
	)
}

// literal is Literal: a single- or double-quoted run of characters
// excluding the delimiting quote, with no escape mechanism.
var literal = pc.Or(unquote('\'', '\''), unquote('"', '"'))

// term is Term: Literal | RuleName.
var term = pc.Or(
	pc.Lift(func(s string) TermRule { return Literal(s) }, literal),
	pc.Lift(func(s string) TermRule { return RuleRef(s) }, ruleNameText),
)

// list is List: Term (OptWS Term)*.
var list = pc.PlusMany(term, pc.Many(pc.DiscardLeft(optWS, term)))

// expression is Expression: List (OptWS '|' OptWS List)*.
var expression = pc.PlusMany(
	list,
	pc.Many(pc.DiscardLeft(optWS, pc.DiscardLeft(pc.Rune('|'), pc.DiscardLeft(optWS, list)))),
)

// ruleDef is RuleDef: RuleName "::=".
var ruleDef = pc.DiscardRight(ruleName, pc.MatchString("::="))

// rule is Rule: RuleDef OptWS Expression.
var rule = pc.Lift2(
	func(name string, alts [][]TermRule) Rule {
		return Rule{Name: name, Alternatives: alts}
	},
	ruleDef,
	pc.DiscardLeft(optWS, expression),
)

// syntax is Syntax: Rule (OptWS EOL Rule)*, with any trailing
// whitespace (including a final line terminator) tolerated and
// consumed before the whole grammar must be exhausted.
var syntax = pc.Finish(pc.DiscardRight(
	pc.PlusMany(rule, pc.Many(pc.DiscardLeft(optWS, pc.DiscardLeft(eol, rule)))),
	pc.SkipMany(pc.Satisfy(unicode.IsSpace)),
))

// parseGrammar parses grammar text into the sequence of rules it
// declares, in declaration order.
func parseGrammar(grammarText string) ([]Rule, error) {
	s := pc.NewScanner(grammarText)
	return syntax(s)
}

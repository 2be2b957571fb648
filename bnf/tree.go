// Package bnf compiles a BNF grammar description into a live parser
// built from the root package's combinators. The grammar itself is
// parsed with those same combinators (see grammar.go); compile.go
// walks the resulting rule map into a Parser[ParseNode].
package bnf

import (
	"fmt"
	"strings"
)

// ParseNode is a node in the tree produced by a compiled grammar.
// It is a closed sum of two variants: RuleNode, for input matched by
// a named rule, and LiteralNode, for input matched by a literal term.
type ParseNode interface {
	// Show reconstructs the exact input text the node matched.
	Show() string

	node()
}

func (RuleNode) node()    {}
func (LiteralNode) node() {}

// RuleNode is the parse tree produced by matching a named rule's
// winning alternative. Children holds one entry per term in that
// alternative, in the order the terms appeared.
type RuleNode struct {
	Name     string
	Children []ParseNode
}

// Show reconstructs the input matched by the rule by concatenating
// the Show of each child in order.
func (r RuleNode) Show() string {
	var b strings.Builder
	for _, c := range r.Children {
		b.WriteString(c.Show())
	}

	return b.String()
}

func (r RuleNode) String() string {
	children := make([]string, len(r.Children))
	for i, c := range r.Children {
		children[i] = fmt.Sprint(c)
	}

	return fmt.Sprintf("<%s>(%s)", r.Name, strings.Join(children, " "))
}

// LiteralNode is the parse tree produced by matching a literal term.
type LiteralNode struct {
	Text string
}

// Show returns the literal's matched text verbatim.
func (l LiteralNode) Show() string {
	return l.Text
}

func (l LiteralNode) String() string {
	return fmt.Sprintf("%q", l.Text)
}

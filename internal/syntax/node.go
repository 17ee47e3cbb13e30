package syntax

import (
	"fmt"
)

// Kind is a node kind tag.
type Kind int

const (
	KindInvalid Kind = iota

	// KindDivide is a binary division expression: numerator, then denominator.
	KindDivide

	// KindNumericLiteral is a numeric literal leaf, its Token keeps the source text.
	KindNumericLiteral

	// KindIdentifier is a name reference.
	KindIdentifier

	// KindOther is anything a host does not need to distinguish.
	KindOther
)

var kindValueMap = map[Kind]string{
	KindDivide:         "divide",
	KindNumericLiteral: "numeric-literal",
	KindIdentifier:     "identifier",
	KindOther:          "other",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Position is a point in a source file. Line and Column are 1-based, Offset is a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Span is a [Start, End) range of a source file.
type Span struct {
	File  string
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Start.Line, s.Start.Column)
}

// Token is a leaf token as written in source.
type Token struct {
	Text string
}

// Node is a tree element. Children are ordered as in source.
type Node struct {
	Kind     Kind
	Children []*Node
	Span     Span
	Token    Token
}

// Walk visits root and its descendants in pre-order. Children of a node are skipped when fn
// returns false for it.
func Walk(root *Node, fn func(n *Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}

	for _, child := range root.Children {
		Walk(child, fn)
	}
}

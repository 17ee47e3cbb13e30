// Package divzero flags division expressions whose denominator is the literal 0.
//
// The check is purely syntactic: identifiers are never resolved and literal texts are never
// normalized, so only a denominator written exactly as "0" is reported. "0.0", "0x0" or "00"
// are left alone.
//
// The denominator is taken to be the last numeric literal among the immediate children of the
// division node. For a well-formed binary division this is the right operand whenever the
// right operand is a literal. When only the numerator is a literal, that literal is picked:
// "0 / y" is reported.
package divzero

import (
	"github.com/sirkon/divzero/internal/dispatch"
	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/rules"
	"github.com/sirkon/divzero/internal/syntax"
)

const zeroText = "0"

// Match tells if the given division node has the literal 0 as its denominator candidate and
// returns the division node itself on success.
func Match(node *syntax.Node) (*syntax.Node, bool) {
	var denominator *syntax.Node
	for _, child := range node.Children {
		if child.Kind == syntax.KindNumericLiteral {
			denominator = child
		}
	}

	if denominator == nil {
		return nil, false
	}
	if denominator.Token.Text != zeroText {
		return nil, false
	}

	return node, true
}

// Emit reports a diagnostic located at the whole division expression.
func Emit(rep report.Func, rule *rules.Descriptor, node *syntax.Node) {
	rep(report.Diagnostic{
		Rule: rule,
		Span: node.Span,
	})
}

// Check returns a handler of division nodes.
func Check(rule *rules.Descriptor) dispatch.Handler {
	return func(nc *dispatch.NodeContext) {
		node, ok := Match(nc.Node)
		if !ok {
			return
		}

		Emit(nc.Report, rule, node)
	}
}

// Register binds the rule to division nodes.
func Register(b *dispatch.Builder, rule *rules.Descriptor) {
	b.Register(syntax.KindDivide, Check(rule))
}

// Table returns a dispatch table with the rule registered.
func Table(rule *rules.Descriptor) *dispatch.Table {
	b := dispatch.NewBuilder()
	Register(b, rule)
	return b.Build()
}

// Supported lists descriptors of diagnostics this package can produce.
func Supported() []*rules.Descriptor {
	return []*rules.Descriptor{rules.DivideByZero}
}

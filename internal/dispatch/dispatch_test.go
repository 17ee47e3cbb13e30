package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/rules"
	"github.com/sirkon/divzero/internal/syntax"
)

func tree() *syntax.Node {
	lit := func(text string) *syntax.Node {
		return &syntax.Node{Kind: syntax.KindNumericLiteral, Token: syntax.Token{Text: text}}
	}

	return &syntax.Node{
		Kind: syntax.KindOther,
		Children: []*syntax.Node{
			{Kind: syntax.KindDivide, Children: []*syntax.Node{lit("1"), lit("0")}},
			{Kind: syntax.KindDivide, Children: []*syntax.Node{
				{Kind: syntax.KindDivide, Children: []*syntax.Node{lit("4"), lit("2")}},
				lit("3"),
			}},
		},
	}
}

func TestTable_Visit(t *testing.T) {
	b := NewBuilder()

	var divides, literals int
	b.Register(syntax.KindDivide, func(nc *NodeContext) {
		if nc.Node.Kind != syntax.KindDivide {
			t.Errorf("unexpected node kind %s", nc.Node.Kind)
		}
		divides++
		nc.Report(report.Diagnostic{Rule: rules.DivideByZero, Span: nc.Node.Span})
	})
	b.Register(syntax.KindNumericLiteral, func(nc *NodeContext) { literals++ })
	table := b.Build()

	// Registrations after Build must not leak into the table.
	b.Register(syntax.KindIdentifier, func(nc *NodeContext) {})

	var reported int
	if err := table.Visit(context.Background(), tree(), func(d report.Diagnostic) { reported++ }); err != nil {
		t.Fatal(err)
	}

	if divides != 3 {
		t.Errorf("expected 3 divide visits, got %d", divides)
	}
	if literals != 5 {
		t.Errorf("expected 5 literal visits, got %d", literals)
	}
	if reported != 3 {
		t.Errorf("expected 3 reports, got %d", reported)
	}

	kinds := table.Kinds()
	if len(kinds) != 2 || kinds[0] != syntax.KindDivide || kinds[1] != syntax.KindNumericLiteral {
		t.Errorf("unexpected kinds %v", kinds)
	}
	if table.Handles(syntax.KindIdentifier) {
		t.Error("table must be immutable after Build")
	}
}

func TestTable_VisitCancelled(t *testing.T) {
	b := NewBuilder()
	b.Register(syntax.KindDivide, func(nc *NodeContext) {
		t.Error("no visits expected in a cancelled traversal")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Build().Visit(ctx, tree(), func(report.Diagnostic) {})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTable_VisitAll(t *testing.T) {
	b := NewBuilder()
	b.Register(syntax.KindDivide, func(nc *NodeContext) {
		nc.Report(report.Diagnostic{Rule: rules.DivideByZero, Span: nc.Node.Span})
	})
	table := b.Build()

	roots := make([]*syntax.Node, 50)
	for i := range roots {
		roots[i] = tree()
	}

	var reported atomic.Int64
	err := table.VisitAll(context.Background(), roots, 4, func(report.Diagnostic) {
		reported.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := reported.Load(); got != 150 {
		t.Errorf("expected 150 reports, got %d", got)
	}
}

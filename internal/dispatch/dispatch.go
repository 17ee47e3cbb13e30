// Package dispatch runs rule handlers over syntax trees.
//
// Handlers are bound to node kinds in a [Table] built once with a [Builder]. The table is
// immutable after [Builder.Build] and may be used from any number of goroutines.
package dispatch

import (
	"context"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/syntax"
)

// Handler checks a single node.
type Handler func(nc *NodeContext)

// NodeContext is what a handler gets for a visited node.
type NodeContext struct {
	// Context is the cancellation scope of the whole traversal.
	Context context.Context

	// Node is the visited node, its kind is the one the handler was registered for.
	Node *syntax.Node

	report report.Func
}

// Report hands a diagnostic over to the host.
func (nc *NodeContext) Report(d report.Diagnostic) {
	nc.report(d)
}

// Builder collects handler registrations.
type Builder struct {
	handlers map[syntax.Kind][]Handler
}

// NewBuilder is [Builder] constructor.
func NewBuilder() *Builder {
	return &Builder{handlers: map[syntax.Kind][]Handler{}}
}

// Register binds handler to nodes of the given kind.
func (b *Builder) Register(kind syntax.Kind, handler Handler) {
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Build returns an immutable table of registered handlers.
func (b *Builder) Build() *Table {
	handlers := make(map[syntax.Kind][]Handler, len(b.handlers))
	for k, v := range b.handlers {
		handlers[k] = slices.Clone(v)
	}

	return &Table{handlers: handlers}
}

// Table maps node kinds to handlers.
type Table struct {
	handlers map[syntax.Kind][]Handler
}

// Kinds returns node kinds having handlers, sorted.
func (t *Table) Kinds() []syntax.Kind {
	return slices.Sorted(maps.Keys(t.handlers))
}

// Handles tells if there are handlers for the given kind.
func (t *Table) Handles(kind syntax.Kind) bool {
	return len(t.handlers[kind]) > 0
}

// VisitNode runs handlers registered for the node kind against this node only.
func (t *Table) VisitNode(ctx context.Context, node *syntax.Node, rep report.Func) {
	handlers := t.handlers[node.Kind]
	if len(handlers) == 0 {
		return
	}

	nc := &NodeContext{
		Context: ctx,
		Node:    node,
		report:  rep,
	}
	for _, h := range handlers {
		h(nc)
	}
}

// Visit walks the tree in pre-order and runs handlers for every node. Cancellation is checked
// between node visits.
func (t *Table) Visit(ctx context.Context, root *syntax.Node, rep report.Func) error {
	var err error
	syntax.Walk(root, func(n *syntax.Node) bool {
		if err != nil {
			return false
		}
		if err = ctx.Err(); err != nil {
			return false
		}

		t.VisitNode(ctx, n, rep)
		return true
	})

	return err
}

// VisitAll visits trees concurrently with at most workers trees in flight. workers < 1 means
// no limit. rep must be safe for concurrent use.
func (t *Table) VisitAll(ctx context.Context, roots []*syntax.Node, workers int, rep report.Func) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, root := range roots {
		g.Go(func() error {
			return t.Visit(ctx, root, rep)
		})
	}

	return g.Wait()
}

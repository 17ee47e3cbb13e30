package report

import (
	"cmp"
	"slices"
	"sync"

	"github.com/sirkon/rbtree"
)

// Collector gathers diagnostics reported from any number of goroutines.
// A diagnostic of the same rule at the same span is kept once.
type Collector struct {
	mu    sync.Mutex
	seen  *rbtree.Tree[*diagnosticKey]
	diags []Diagnostic
}

// NewCollector is [Collector] constructor.
func NewCollector() *Collector {
	return &Collector{seen: rbtree.New[*diagnosticKey]()}
}

// Report adds a diagnostic. It is a [Func].
func (c *Collector) Report(d Diagnostic) {
	key := &diagnosticKey{
		id:    d.Rule.ID,
		file:  d.Span.File,
		start: d.Span.Start.Offset,
		end:   d.Span.End.Offset,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen.InsertReturn(key) != key {
		return
	}
	c.diags = append(c.diags, d)
}

// Len returns the number of distinct diagnostics collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Diagnostics returns a sorted snapshot of collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	c.mu.Unlock()

	slices.SortFunc(out, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Span.File, b.Span.File),
			cmp.Compare(a.Span.Start.Offset, b.Span.Start.Offset),
			cmp.Compare(a.Span.End.Offset, b.Span.End.Offset),
			cmp.Compare(a.Rule.ID, b.Rule.ID),
		)
	})
	return out
}

type diagnosticKey struct {
	id    string
	file  string
	start int
	end   int
}

// Cmp orders keys by rule, file and span. Equal keys denote the same finding.
func (k *diagnosticKey) Cmp(other *diagnosticKey) int {
	return cmp.Or(
		cmp.Compare(k.id, other.id),
		cmp.Compare(k.file, other.file),
		cmp.Compare(k.start, other.start),
		cmp.Compare(k.end, other.end),
	)
}

// Package report carries diagnostics from rules to whoever collects them.
package report

import (
	"github.com/sirkon/divzero/internal/rules"
	"github.com/sirkon/divzero/internal/syntax"
)

// Diagnostic is a single finding of a rule at a source range.
type Diagnostic struct {
	Rule *rules.Descriptor
	Span syntax.Span
}

// Message renders the rule message for the diagnostic.
func (d Diagnostic) Message() string {
	return d.Rule.Message()
}

// Func is a reporting callback provided by a host.
type Func func(d Diagnostic)

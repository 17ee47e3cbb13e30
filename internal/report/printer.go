package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer renders diagnostics in a compact, human-readable form:
//
//	file.cs:3:13: error DividingAnalyzer: division by literal zero
type Printer struct {
	w        io.Writer
	location *color.Color
	severity *color.Color
	rule     *color.Color
}

// NewPrinter creates a printer writing into w.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:        w,
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		rule:     color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.location, p.severity, p.rule} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes a single diagnostic line.
func (p *Printer) Print(d Diagnostic) error {
	_, err := fmt.Fprintf(
		p.w,
		"%s: %s %s: %s\n",
		p.location.Sprint(d.Span.String()),
		p.severity.Sprint(d.Rule.Severity.String()),
		p.rule.Sprint(d.Rule.ID),
		d.Message(),
	)
	if err != nil {
		return fmt.Errorf("print diagnostic: %w", err)
	}

	return nil
}

// PrintSummary writes all diagnostics followed by their count.
func (p *Printer) PrintSummary(diags []Diagnostic) error {
	for _, d := range diags {
		if err := p.Print(d); err != nil {
			return err
		}
	}

	if len(diags) == 0 {
		return nil
	}

	noun := "diagnostics"
	if len(diags) == 1 {
		noun = "diagnostic"
	}
	if _, err := fmt.Fprintf(p.w, "%d %s\n", len(diags), noun); err != nil {
		return fmt.Errorf("print summary: %w", err)
	}

	return nil
}

package rules

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/sirkon/divzero/internal/messages"
)

const (
	// DivideByZeroID is a stable identifier of the division by literal zero rule.
	DivideByZeroID = "DividingAnalyzer"

	// CategoryUsage classifies rules catching incorrect usage of language constructs.
	CategoryUsage = "Usage"
)

// Descriptor is an immutable rule description.
type Descriptor struct {
	ID               string
	Title            string
	MessageFormat    string
	Description      string
	Category         string
	Severity         Severity
	EnabledByDefault bool
}

// DivideByZero is the process-wide descriptor of the division by literal zero rule.
var DivideByZero = New(messages.Catalog(), language.English)

// New resolves the division by literal zero descriptor for the given locale.
func New(p messages.Provider, tag language.Tag) *Descriptor {
	return &Descriptor{
		ID:               DivideByZeroID,
		Title:            p.Lookup(tag, messages.DivideByZeroTitle),
		MessageFormat:    p.Lookup(tag, messages.DivideByZeroMessageFormat),
		Description:      p.Lookup(tag, messages.DivideByZeroDescription),
		Category:         CategoryUsage,
		Severity:         SeverityError,
		EnabledByDefault: true,
	}
}

// String returns the rule identifier and its title.
func (d *Descriptor) String() string {
	return d.ID + ": " + d.Title
}

// Message renders the message format. The format is used as is when no arguments are given.
func (d *Descriptor) Message(args ...any) string {
	if len(args) == 0 {
		return d.MessageFormat
	}

	return fmt.Sprintf(d.MessageFormat, args...)
}

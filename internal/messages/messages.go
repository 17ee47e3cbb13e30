// Package messages resolves rule texts for a locale.
package messages

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message text.
type Key string

const (
	DivideByZeroTitle         Key = "DivideByZeroTitle"
	DivideByZeroMessageFormat Key = "DivideByZeroMessageFormat"
	DivideByZeroDescription   Key = "DivideByZeroDescription"
)

// Provider resolves a message key for a language.
type Provider interface {
	Lookup(tag language.Tag, key Key) string
}

var supported = []language.Tag{
	language.English,
	language.Russian,
}

var texts = map[language.Tag]map[Key]string{
	language.English: {
		DivideByZeroTitle:         "Division by literal zero",
		DivideByZeroMessageFormat: "division by literal zero",
		DivideByZeroDescription: "The denominator of the division is the numeric literal 0. " +
			"The expression always fails or yields an infinity at run time.",
	},
	language.Russian: {
		DivideByZeroTitle:         "Деление на литерал ноль",
		DivideByZeroMessageFormat: "деление на литерал ноль",
		DivideByZeroDescription: "Делитель записан числовым литералом 0. " +
			"Выражение всегда завершится ошибкой или даст бесконечность во время выполнения.",
	},
}

// CatalogProvider is a [Provider] backed by an x/text message catalog.
type CatalogProvider struct {
	cat     catalog.Catalog
	matcher language.Matcher
}

// Catalog returns the built-in provider. English is used for every language it does not know.
func Catalog() *CatalogProvider {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tag := range supported {
		for key, text := range texts[tag] {
			// Builder.SetString only fails on malformed tags or keys, neither can happen here.
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(fmt.Errorf("register message %s for %s: %w", key, tag, err))
			}
		}
	}

	return &CatalogProvider{
		cat:     b,
		matcher: language.NewMatcher(supported),
	}
}

// Lookup implements [Provider].
func (p *CatalogProvider) Lookup(tag language.Tag, key Key) string {
	_, index, confidence := p.matcher.Match(tag)
	if confidence == language.No {
		index = 0
	}

	return message.NewPrinter(supported[index], message.Catalog(p.cat)).Sprintf(string(key))
}

// ParseLocale parses a BCP 47 tag. An empty string stands for English.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}

	return tag, nil
}

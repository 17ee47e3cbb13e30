package messages

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogLookup(t *testing.T) {
	p := Catalog()

	tests := []struct {
		name string
		tag  language.Tag
		key  Key
		want string
	}{
		{
			name: "english title",
			tag:  language.English,
			key:  DivideByZeroTitle,
			want: "Division by literal zero",
		},
		{
			name: "regional english",
			tag:  language.BritishEnglish,
			key:  DivideByZeroMessageFormat,
			want: "division by literal zero",
		},
		{
			name: "russian title",
			tag:  language.Russian,
			key:  DivideByZeroTitle,
			want: "Деление на литерал ноль",
		},
		{
			name: "regional russian",
			tag:  language.MustParse("ru-RU"),
			key:  DivideByZeroMessageFormat,
			want: "деление на литерал ноль",
		},
		{
			name: "unknown falls back to english",
			tag:  language.Japanese,
			key:  DivideByZeroTitle,
			want: "Division by literal zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Lookup(tt.tag, tt.key); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogHasEveryKey(t *testing.T) {
	p := Catalog()
	for _, tag := range supported {
		for _, key := range []Key{DivideByZeroTitle, DivideByZeroMessageFormat, DivideByZeroDescription} {
			if got := p.Lookup(tag, key); got == "" || got == string(key) {
				t.Errorf("no text for %s in %s", key, tag)
			}
		}
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil {
		t.Fatal(err)
	}
	if tag != language.English {
		t.Errorf("empty locale must be english, got %s", tag)
	}

	tag, err = ParseLocale(" ru ")
	if err != nil {
		t.Fatal(err)
	}
	if tag != language.Russian {
		t.Errorf("got %s, want ru", tag)
	}

	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Error("error expected for malformed locale")
	}
}

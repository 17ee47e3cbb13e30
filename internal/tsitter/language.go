package tsitter

import (
	"encoding"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
)

// Language of a source file.
type Language int

const (
	LanguageInvalid Language = iota
	LanguageCSharp
	LanguageGo
)

var languageValueMap = map[Language]string{
	LanguageCSharp: "csharp",
	LanguageGo:     "go",
}

func (l Language) String() string {
	v, ok := languageValueMap[l]
	if !ok {
		return fmt.Sprintf("invalid(%d)", l)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Language(0)
	_ encoding.TextUnmarshaler = (*Language)(nil)
)

func (l Language) MarshalText() ([]byte, error) {
	v, ok := languageValueMap[l]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Language(%d)", l)
	}

	return []byte(v), nil
}

func (l *Language) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range languageValueMap {
		if v == text {
			*l = k
			return nil
		}
	}

	return fmt.Errorf("unknown language %q", text)
}

// ForPath detects a language by the file extension.
func ForPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs":
		return LanguageCSharp, true
	case ".go":
		return LanguageGo, true
	default:
		return LanguageInvalid, false
	}
}

// grammar describes how node types of a tree-sitter grammar map onto syntax kinds.
type grammar struct {
	language    *sitter.Language
	literals    map[string]struct{}
	identifiers map[string]struct{}
}

func (l Language) grammar() (*grammar, error) {
	switch l {
	case LanguageCSharp:
		return &grammar{
			language: csharp.GetLanguage(),
			literals: map[string]struct{}{
				"integer_literal": {},
				"real_literal":    {},
			},
			identifiers: map[string]struct{}{
				"identifier": {},
			},
		}, nil
	case LanguageGo:
		return &grammar{
			language: golang.GetLanguage(),
			literals: map[string]struct{}{
				"int_literal":       {},
				"float_literal":     {},
				"imaginary_literal": {},
			},
			identifiers: map[string]struct{}{
				"identifier":       {},
				"field_identifier": {},
			},
		}, nil
	default:
		return nil, fmt.Errorf("no grammar for language %s", l)
	}
}

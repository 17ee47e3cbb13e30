// Package tsitter converts tree-sitter parse trees of C# and Go sources into [syntax.Node] trees.
package tsitter

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/sirkon/divzero/internal/syntax"
)

// Parse parses src and converts the whole tree. Sources with syntax errors are still converted,
// the erroneous parts become nodes of [syntax.KindOther].
func Parse(ctx context.Context, lang Language, file string, src []byte) (*syntax.Node, error) {
	g, err := lang.grammar()
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(g.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	defer tree.Close()

	c := &converter{
		grammar: g,
		file:    file,
		src:     src,
	}
	root, err := c.convert(tree.RootNode())
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", file, err)
	}

	return root, nil
}

type converter struct {
	grammar *grammar
	file    string
	src     []byte
}

func (c *converter) convert(n *sitter.Node) (*syntax.Node, error) {
	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	res := &syntax.Node{
		Kind: syntax.KindOther,
		Span: span,
	}

	typ := n.Type()
	switch {
	case typ == "binary_expression":
		if op := n.ChildByFieldName("operator"); op != nil && op.Type() == "/" {
			res.Kind = syntax.KindDivide
		}
	case has(c.grammar.literals, typ):
		res.Kind = syntax.KindNumericLiteral
		res.Token = syntax.Token{Text: n.Content(c.src)}
	case has(c.grammar.identifiers, typ):
		res.Kind = syntax.KindIdentifier
		res.Token = syntax.Token{Text: n.Content(c.src)}
	}

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}

		cn, err := c.convert(child)
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, cn)
	}

	return res, nil
}

func (c *converter) span(n *sitter.Node) (syntax.Span, error) {
	start, err := position(n.StartByte(), n.StartPoint())
	if err != nil {
		return syntax.Span{}, fmt.Errorf("start of %s: %w", n.Type(), err)
	}
	end, err := position(n.EndByte(), n.EndPoint())
	if err != nil {
		return syntax.Span{}, fmt.Errorf("end of %s: %w", n.Type(), err)
	}

	return syntax.Span{
		File:  c.file,
		Start: start,
		End:   end,
	}, nil
}

func position(offset uint32, point sitter.Point) (syntax.Position, error) {
	off, err := safecast.Conv[int](offset)
	if err != nil {
		return syntax.Position{}, fmt.Errorf("offset: %w", err)
	}
	row, err := safecast.Conv[int](point.Row)
	if err != nil {
		return syntax.Position{}, fmt.Errorf("row: %w", err)
	}
	col, err := safecast.Conv[int](point.Column)
	if err != nil {
		return syntax.Position{}, fmt.Errorf("column: %w", err)
	}

	return syntax.Position{
		Offset: off,
		Line:   row + 1,
		Column: col + 1,
	}, nil
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

var goGeneratedRe = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// IsGenerated tells if the source is generated code, which is not analyzed.
func IsGenerated(lang Language, file string, src []byte) bool {
	switch lang {
	case LanguageGo:
		// The marker must precede the package clause.
		var header []byte
		switch idx := bytes.Index(src, []byte("\npackage ")); {
		case bytes.HasPrefix(src, []byte("package ")):
		case idx >= 0:
			header = src[:idx]
		default:
			header = src
		}
		return goGeneratedRe.Match(header)

	case LanguageCSharp:
		name := strings.ToLower(filepath.Base(file))
		for _, suffix := range []string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"} {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}

		head := src
		if len(head) > 2048 {
			head = head[:2048]
		}
		return bytes.Contains(bytes.ToLower(head), []byte("<auto-generated"))

	default:
		return false
	}
}

// Package goast converts Go syntax trees into [syntax.Node] trees.
package goast

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/divzero/internal/syntax"
)

// Convert converts an expression tree. Division is the only binary operator getting its own
// kind, operators are tokens and are not represented as children.
func Convert(fset *token.FileSet, expr ast.Expr) *syntax.Node {
	n := &syntax.Node{
		Kind: syntax.KindOther,
		Span: Span(fset, expr),
	}

	switch e := expr.(type) {
	case *ast.BinaryExpr:
		if e.Op == token.QUO {
			n.Kind = syntax.KindDivide
		}
		n.Children = []*syntax.Node{Convert(fset, e.X), Convert(fset, e.Y)}

	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.FLOAT, token.IMAG:
			n.Kind = syntax.KindNumericLiteral
		}
		n.Token = syntax.Token{Text: e.Value}

	case *ast.Ident:
		n.Kind = syntax.KindIdentifier
		n.Token = syntax.Token{Text: e.Name}

	case *ast.ParenExpr:
		n.Children = []*syntax.Node{Convert(fset, e.X)}

	case *ast.UnaryExpr:
		n.Children = []*syntax.Node{Convert(fset, e.X)}

	case *ast.StarExpr:
		n.Children = []*syntax.Node{Convert(fset, e.X)}

	case *ast.SelectorExpr:
		n.Children = []*syntax.Node{Convert(fset, e.X), Convert(fset, e.Sel)}

	case *ast.IndexExpr:
		n.Children = []*syntax.Node{Convert(fset, e.X), Convert(fset, e.Index)}

	case *ast.CallExpr:
		n.Children = make([]*syntax.Node, 0, len(e.Args)+1)
		n.Children = append(n.Children, Convert(fset, e.Fun))
		for _, arg := range e.Args {
			n.Children = append(n.Children, Convert(fset, arg))
		}
	}

	return n
}

// Divisions returns converted division expressions of a file in source order, nested ones
// included. Generated files yield nothing.
func Divisions(fset *token.FileSet, file *ast.File) []*syntax.Node {
	if ast.IsGenerated(file) {
		return nil
	}

	var res []*syntax.Node
	ast.Inspect(file, func(n ast.Node) bool {
		if e, ok := n.(*ast.BinaryExpr); ok && e.Op == token.QUO {
			res = append(res, Convert(fset, e))
		}
		return true
	})

	return res
}

// Span returns the source range of a node.
func Span(fset *token.FileSet, n ast.Node) syntax.Span {
	start := fset.Position(n.Pos())
	end := fset.Position(n.End())

	return syntax.Span{
		File:  start.Filename,
		Start: syntax.Position{Offset: start.Offset, Line: start.Line, Column: start.Column},
		End:   syntax.Position{Offset: end.Offset, Line: end.Line, Column: end.Column},
	}
}

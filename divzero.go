// Package divzero provides an analyzer reporting division by the literal zero.
package divzero

import (
	"context"
	"go/ast"
	"go/token"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/divzero/internal/dispatch"
	divrule "github.com/sirkon/divzero/internal/divzero"
	"github.com/sirkon/divzero/internal/goast"
	"github.com/sirkon/divzero/internal/messages"
	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/rules"
)

const doc = `divzero reports division expressions whose denominator is the literal 0

Only a denominator written exactly as 0 is reported: 0.0, 0x0 or a constant
equal to zero are not. Integer divisions of this kind are rejected by the
type checker as well, floating point ones silently produce an infinity.`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:             "divzero",
	Doc:              doc,
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	Run:              run,
	RunDespiteErrors: true,
}

var locale string

func init() {
	Analyzer.Flags.StringVar(&locale, "locale", "", "language of diagnostic messages as a BCP 47 tag, english by default")
}

type setup struct {
	rule  *rules.Descriptor
	table *dispatch.Table
}

// loadSetup resolves the descriptor once per process, flags are parsed by then.
var loadSetup = sync.OnceValues(func() (*setup, error) {
	rule := rules.DivideByZero
	if locale != "" {
		tag, err := messages.ParseLocale(locale)
		if err != nil {
			return nil, err
		}
		rule = rules.New(messages.Catalog(), tag)
	}

	return &setup{
		rule:  rule,
		table: divrule.Table(rule),
	}, nil
})

func run(pass *analysis.Pass) (any, error) {
	s, err := loadSetup()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	generated := map[*token.File]bool{}
	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			generated[pass.Fset.File(file.Pos())] = true
		}
	}

	nodeFilter := []ast.Node{
		(*ast.BinaryExpr)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.BinaryExpr) // No need to assert check since we only get binary expressions.
		if n.Op != token.QUO {
			return
		}

		tf := pass.Fset.File(n.Pos())
		if tf == nil || generated[tf] {
			return
		}

		s.table.VisitNode(context.Background(), goast.Convert(pass.Fset, n), func(d report.Diagnostic) {
			pass.Report(analysis.Diagnostic{
				Pos:      tf.Pos(d.Span.Start.Offset),
				End:      tf.Pos(d.Span.End.Offset),
				Category: d.Rule.Category,
				Message:  d.Message(),
			})
		})
	})

	return nil, nil
}

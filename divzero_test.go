package divzero

import (
	"context"
	"embed"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/go/analysis/analysistest"

	divrule "github.com/sirkon/divzero/internal/divzero"
	"github.com/sirkon/divzero/internal/goast"
	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/rules"
)

//go:embed testdata/cases
var cases embed.FS

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "a", "gen")
}

func TestAnalyzerDespiteTypeErrors(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "b")
}

func TestCases(t *testing.T) {
	// Flagged source fragments per case file. Cases are parsed only, so constant divisions
	// rejected by the type checker are fine here.
	expected := map[string][]string{
		"case_literal_zero.go":   {"1 / 0"},
		"case_non_zero.go":       nil,
		"case_identifier.go":     nil,
		"case_zero_by_zero.go":   {"0 / 0"},
		"case_real_zero.go":      nil,
		"case_zero_numerator.go": {"0 / y"},
	}

	files, err := cases.ReadDir("testdata/cases")
	if err != nil {
		t.Fatalf("list case files: %s", err)
	}

	table := divrule.Table(rules.DivideByZero)
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			src, err := cases.ReadFile("testdata/cases/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}

			want, ok := expected[file.Name()]
			if !ok {
				t.Fatal("no expectations found for", file.Name())
			}

			fset := token.NewFileSet()
			f, err := parser.ParseFile(fset, file.Name(), src, parser.ParseComments)
			if err != nil {
				t.Fatalf("parse %s: %s", file.Name(), err)
			}

			c := report.NewCollector()
			for _, node := range goast.Divisions(fset, f) {
				table.VisitNode(context.Background(), node, c.Report)
			}

			var got []string
			for _, d := range c.Diagnostics() {
				got = append(got, string(src[d.Span.Start.Offset:d.Span.End.Offset]))
			}

			if len(got) != len(want) {
				deepequal.SideBySide(t, "flagged", want, got)
				return
			}
			for i := range want {
				if got[i] != want[i] {
					deepequal.SideBySide(t, "flagged", want, got)
					return
				}
			}
		})
	}
}

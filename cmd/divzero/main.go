// Command divzero runs the divzero analyzer over Go packages.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/divzero"
)

func main() {
	singlechecker.Main(divzero.Analyzer)
}

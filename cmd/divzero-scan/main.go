// Command divzero-scan reports division by the literal zero in C# and Go source trees.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "divzero-scan [flags] [dir]",
	Short: "Report division by the literal zero in C# and Go sources",
	Long: `divzero-scan parses C# and Go sources found under the directory (current one by default)
and reports every division whose denominator is written as the literal 0.

Settings are read from .divzero.yaml, .divzero.yml or .divzero.toml in the directory,
then DIVZERO_LOCALE and DIVZERO_WORKERS environment variables (a .env file is loaded too),
then command line flags.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// main loads .env, runs the root command and exits with status 1 on errors or findings.
func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

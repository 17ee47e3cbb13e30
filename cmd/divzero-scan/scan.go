package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirkon/divzero/internal/config"
	"github.com/sirkon/divzero/internal/divzero"
	"github.com/sirkon/divzero/internal/messages"
	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/rules"
	"github.com/sirkon/divzero/internal/scan"
)

// errFindings is returned when diagnostics were reported, they are already printed by then.
var errFindings = errors.New("division by literal zero found")

var configNames = []string{".divzero.yaml", ".divzero.yml", ".divzero.toml"}

func init() {
	rootCmd.Flags().String("config", "", "config file (.yaml, .yml or .toml), looked up in the directory when omitted")
	rootCmd.Flags().String("locale", "", "language of diagnostic messages as a BCP 47 tag")
	rootCmd.Flags().Int("jobs", 0, "max files checked in parallel (0 means the config or GOMAXPROCS)")
	rootCmd.Flags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.Flags().StringSlice("include", nil, "doublestar patterns of files to check")
	rootCmd.Flags().StringSlice("exclude", nil, "doublestar patterns of files to skip")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count, err := scanDir(cmd.Context(), root, cfg, out, useColor(cfg.Color, out))
	if err != nil {
		return err
	}
	if count > 0 {
		return errFindings
	}

	return nil
}

// loadConfig merges the config file, environment and flags, later ones win.
func loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	if path == "" {
		path = findConfig(root)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if flags.Changed("locale") {
		if cfg.Locale, err = flags.GetString("locale"); err != nil {
			return nil, fmt.Errorf("get locale flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if cfg.Workers, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("get jobs flag: %w", err)
		}
	}
	if flags.Changed("color") {
		mode, err := flags.GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		if err := cfg.Color.UnmarshalText([]byte(mode)); err != nil {
			return nil, fmt.Errorf("parse color flag: %w", err)
		}
	}
	if flags.Changed("include") {
		if cfg.Include, err = flags.GetStringSlice("include"); err != nil {
			return nil, fmt.Errorf("get include flag: %w", err)
		}
	}
	if flags.Changed("exclude") {
		if cfg.Exclude, err = flags.GetStringSlice("exclude"); err != nil {
			return nil, fmt.Errorf("get exclude flag: %w", err)
		}
	}

	return cfg, nil
}

func findConfig(root string) string {
	for _, name := range configNames {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

func useColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorModeOn:
		return true
	case config.ColorModeOff:
		return false
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// scanDir checks sources under root, prints diagnostics and returns their count.
func scanDir(ctx context.Context, root string, cfg *config.Config, out io.Writer, colored bool) (int, error) {
	tag, err := messages.ParseLocale(cfg.Locale)
	if err != nil {
		return 0, err
	}

	rule := rules.DivideByZero
	if cfg.Locale != "" {
		rule = rules.New(messages.Catalog(), tag)
	}

	files, err := scan.Files(root, cfg.Include, cfg.Exclude)
	if err != nil {
		return 0, fmt.Errorf("collect source files: %w", err)
	}

	sink := report.NewCollector()
	if err := scan.Run(ctx, divzero.Table(rule), files, cfg.Workers, sink.Report); err != nil {
		return 0, fmt.Errorf("scan sources: %w", err)
	}

	diags := sink.Diagnostics()
	if err := report.NewPrinter(out, colored).PrintSummary(diags); err != nil {
		return 0, err
	}

	return len(diags), nil
}

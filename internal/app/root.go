// Package app contains the Cobra command tree for pathjoin.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackwell-systems/pathjoin/internal/config"
	"github.com/blackwell-systems/pathjoin/internal/output"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "pathjoin",
	Short: "Join path segments into a single slash-separated path",
	Long: `pathjoin joins path segments with '/'. Leading and trailing slashes of
every segment are stripped first, interior slashes are left alone, and empty
segments keep their place, so "a/" "" "/b" joins to "a//b".

Run 'pathjoin' with no arguments to list the subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "pathjoin", appVersion)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use a subcommand:")
		fmt.Fprintln(w, "  join      Join segments given as arguments")
		fmt.Fprintln(w, "  explain   Show how each segment is stripped")
		fmt.Fprintln(w, "  batch     Join one record per stdin line")
		fmt.Fprintln(w, "  mcp       Serve join tools over MCP stdio")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/pathjoin/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// loadConfig reads the config file and settles color output for the run.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	color := !flagNoColor && output.ColorEnabled(cfg.Output.Color, cmd.OutOrStdout())
	output.SetNoColor(!color)
	verbosef(cmd, "config: %d bases, %d batch workers", len(cfg.Bases), cfg.Batch.Workers)
	return cfg, nil
}

// verbosef writes a diagnostic line to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if !flagVerbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

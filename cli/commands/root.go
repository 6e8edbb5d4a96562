// Package commands implements the lsaroute command-line interface.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsaroute/config"
	"github.com/katalvlaran/lsaroute/core"
	"github.com/katalvlaran/lsaroute/dijkstra"
	"github.com/katalvlaran/lsaroute/logging"
	"github.com/katalvlaran/lsaroute/lsa"
)

// noMaxDistance marks the --max-distance flag as unset.
const noMaxDistance = -1

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	maxDistance int64 = noMaxDistance
)

// Resolved by the root PersistentPreRunE before any subcommand runs.
var (
	settings config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lsaroute",
	Short: "Link-state shortest path explorer",
	Long: `lsaroute reads a link-state adjacency file and computes shortest paths
from a source node with a stepwise Dijkstra engine.

File format, one node per line:
  t: u:4 v:2 x:7
  u: w:3
Links are symmetric, so declaring a link from either side is enough.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text, json")
	pf.Int64Var(&maxDistance, "max-distance", noMaxDistance, "Ignore nodes farther than this cost (0 disables)")
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if maxDistance != noMaxDistance {
		cfg.MaxDistance = maxDistance
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger = logging.New(cfg.Logging, cmd.ErrOrStderr())

	return nil
}

// inputPath picks the positional file argument, falling back to the
// configured input.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if settings.Input != "" {
		return settings.Input, nil
	}

	return "", fmt.Errorf("no input file: pass <file> or set input in the config")
}

func loadGraph(args []string) (*core.Graph, string, error) {
	path, err := inputPath(args)
	if err != nil {
		return nil, "", err
	}
	g, err := lsa.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load graph: %w", err)
	}
	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, path, nil
}

// resolveSource prefers the flag value over the configured default.
func resolveSource(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if settings.Source != "" {
		return settings.Source, nil
	}

	return "", fmt.Errorf("no source node: pass --source or set source in the config")
}

func engineOptions(extra ...dijkstra.Option) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithLogger(logger)}
	if settings.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(settings.MaxDistance))
	}

	return append(opts, extra...)
}

func newEngine(g *core.Graph, source string, extra ...dijkstra.Option) (*dijkstra.Engine, error) {
	e, err := dijkstra.New(g, source, engineOptions(extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to start engine: %w", err)
	}

	return e, nil
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

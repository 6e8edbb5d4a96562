package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsaroute/core"
	"github.com/katalvlaran/lsaroute/lsa"
)

var watchSource string

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompute routes whenever the link-state file changes",
	Long: `Print routes from --source, then watch the file and print them again
after every change. A malformed update is logged and the last good graph is
kept.

Examples:
  lsaroute watch net.lsa --source t`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchSource, "source", "s", "", "Source node id")
}

func runWatch(cmd *cobra.Command, args []string) error {
	g, path, err := loadGraph(args)
	if err != nil {
		return err
	}
	source, err := resolveSource(watchSource)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeRoutes(cmd.Context(), out, g, source, ""); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Info("watching", "path", path, "source", source)

	return watchLoop(cmd.Context(), watcher, g, path, source, out)
}

// watchLoop reloads path into g after each burst of write or create events,
// until ctx is done or the watcher closes.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, g *core.Graph, path, source string, out io.Writer) error {
	target := filepath.Clean(path)
	cancel := g.Subscribe(func(ev core.Event) {
		if ev.Kind == core.Replaced {
			logger.Debug("graph replaced", "nodes", g.NodeCount())
		}
	})
	defer cancel()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settings.Watch.Debounce)
			} else {
				timer.Reset(settings.Watch.Debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		case <-fire:
			fire = nil
			reload(ctx, g, path, source, out)
		}
	}
}

// reload replaces g with the contents of path and prints fresh routes. On a
// read or format error g is left untouched and false is returned.
func reload(ctx context.Context, g *core.Graph, path, source string, out io.Writer) bool {
	if err := lsa.LoadFile(g, path); err != nil {
		logger.Warn("reload failed, keeping previous graph", "path", path, "error", err)
		return false
	}
	logger.Info("graph reloaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	fprintf(out, "\n")
	if err := writeRoutes(ctx, out, g, source, ""); err != nil {
		logger.Warn("route computation failed", "source", source, "error", err)
		return false
	}

	return true
}

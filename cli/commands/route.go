package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsaroute/bfs"
	"github.com/katalvlaran/lsaroute/core"
)

var (
	routeSource string
	routeTarget string
)

var routeCmd = &cobra.Command{
	Use:   "route [file]",
	Short: "Print shortest routes from a source node",
	Long: `Compute shortest routes from --source to every reachable node, or to
--target only. Nodes in other components are listed as unreachable, and
nodes cut off by --max-distance as out of range.

Examples:
  lsaroute route net.lsa --source t
  lsaroute route net.lsa --source t --target z`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().StringVarP(&routeSource, "source", "s", "", "Source node id")
	routeCmd.Flags().StringVarP(&routeTarget, "target", "t", "", "Only print the route to this node")
}

func runRoute(cmd *cobra.Command, args []string) error {
	g, _, err := loadGraph(args)
	if err != nil {
		return err
	}
	source, err := resolveSource(routeSource)
	if err != nil {
		return err
	}

	return writeRoutes(cmd.Context(), cmd.OutOrStdout(), g, source, routeTarget)
}

// writeRoutes runs the engine to completion on g and prints one
// "Destination n: route Cost: d" line per discovered node other than source.
// A non-empty target restricts output to that node. Without a target it also
// lists reachable nodes the engine left undiscovered and nodes of other
// components, both taken from a single BFS bounded by ctx.
func writeRoutes(ctx context.Context, w io.Writer, g *core.Graph, source, target string) error {
	e, err := newEngine(g, source)
	if err != nil {
		return err
	}
	final, err := e.Run()
	if err != nil {
		return fmt.Errorf("failed to compute routes: %w", err)
	}

	if target != "" {
		r, err := final.Route(target)
		if err != nil {
			return fmt.Errorf("failed to find route to %q: %w", target, err)
		}
		fprintf(w, "Destination %s: %s Cost: %d\n", r.Target, r, r.Distance)
		return nil
	}

	reachable, unreachable, err := bfs.Partition(g, source, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to compute reachability: %w", err)
	}

	for _, r := range final.Routes() {
		if r.Target == source {
			continue
		}
		fprintf(w, "Destination %s: %s Cost: %d\n", r.Target, r, r.Distance)
	}

	var beyond []string
	for _, n := range reachable {
		if _, err := final.Distance(n); err != nil {
			beyond = append(beyond, n)
		}
	}

	if len(beyond) > 0 {
		fprintf(w, "Out of range: %s\n", strings.Join(beyond, " "))
	}
	if len(unreachable) > 0 {
		fprintf(w, "Unreachable: %s\n", strings.Join(unreachable, " "))
	}

	return nil
}

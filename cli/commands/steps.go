package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lsaroute/dijkstra"
)

const (
	defaultSeparatorWidth = 40
	maxSeparatorWidth     = 80
)

var stepsSource string

var stepsCmd = &cobra.Command{
	Use:   "steps [file]",
	Short: "Trace the shortest-path computation one step at a time",
	Long: `Run Dijkstra from --source and print every intermediate snapshot: the
node finalized at that step, the nodes newly discovered with their tentative
distances, and the visited set so far.

Examples:
  lsaroute steps net.lsa --source t
  lsaroute steps net.lsa --source t --max-distance 6`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
	stepsCmd.Flags().StringVarP(&stepsSource, "source", "s", "", "Source node id")
}

func runSteps(cmd *cobra.Command, args []string) error {
	g, _, err := loadGraph(args)
	if err != nil {
		return err
	}
	source, err := resolveSource(stepsSource)
	if err != nil {
		return err
	}
	e, err := newEngine(g, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sep := strings.Repeat("-", separatorWidth(out))
	for {
		snap, err := e.Next()
		if errors.Is(err, dijkstra.ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		writeSnapshot(out, snap)
		fprintf(out, "%s\n", sep)
	}
}

func writeSnapshot(w io.Writer, snap *dijkstra.Snapshot) {
	d, _ := snap.Distance(snap.VisitedNode())
	fprintf(w, "Step %d: visited %s (distance %d)\n", snap.Step(), snap.VisitedNode(), d)

	discovered := snap.NewlyDiscovered()
	parts := make([]string, 0, len(discovered))
	for _, n := range discovered {
		bp, _ := snap.State().Lookup(n)
		parts = append(parts, fmt.Sprintf("%s=%d via %s", n, bp.Distance, bp.Predecessor))
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	fprintf(w, "  discovered: %s\n", strings.Join(parts, ", "))
	fprintf(w, "  visited:    %s\n", strings.Join(snap.Visited(), " "))
	if snap.Terminal() {
		fprintf(w, "  done\n")
	}
}

// separatorWidth is the terminal width capped at maxSeparatorWidth when w is
// a terminal, defaultSeparatorWidth otherwise.
func separatorWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultSeparatorWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultSeparatorWidth
	}

	return min(width, maxSeparatorWidth)
}

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsaroute/core"
	"github.com/katalvlaran/lsaroute/lsa"
)

var showTree bool

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a parsed link-state file",
	Long: `Parse a link-state file and print it back in canonical form: sorted
nodes, every link listed from both ends.

Examples:
  lsaroute show net.lsa
  lsaroute show net.lsa --tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showTree, "tree", false, "Render the topology as a tree")
}

func runShow(cmd *cobra.Command, args []string) error {
	g, _, err := loadGraph(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showTree {
		writeTree(out, g)
		return nil
	}
	if err := lsa.Write(out, g); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}

	return nil
}

// writeTree renders a "Topology" root, one branch per node and one
// "dest : distance" leaf per link.
func writeTree(w io.Writer, g *core.Graph) {
	fprintf(w, "Topology\n")
	nodes := g.Nodes()
	for i, n := range nodes {
		branch, indent := "├── ", "│   "
		if i == len(nodes)-1 {
			branch, indent = "└── ", "    "
		}
		fprintf(w, "%s%s\n", branch, n)

		nbrs, _ := g.Neighbors(n)
		for j, m := range nbrs {
			leaf := "├── "
			if j == len(nbrs)-1 {
				leaf = "└── "
			}
			fprintf(w, "%s%s%s : %d\n", indent, leaf, m, g.Distance(n, m))
		}
	}
}

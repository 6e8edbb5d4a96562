package lsa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lsaroute/core"
)

// Write serializes g, one sorted line per node. The adjacency is taken from a
// single Clone so concurrent mutation cannot produce a torn output.
//
// A node id containing ':' or whitespace has no textual form Parse accepts;
// Write then fails with a *FormatError naming the output line before
// writing anything.
func Write(w io.Writer, g *core.Graph) error {
	snap := g.Clone()
	nodes := snap.Nodes()
	if err := checkIDs(nodes); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		if _, err := bw.WriteString(formatLine(snap, n)); err != nil {
			return fmt.Errorf("lsa: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("lsa: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("lsa: write: %w", err)
	}

	return nil
}

// Format returns the serialized form of g as a string.
func Format(g *core.Graph) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// WriteFile serializes g to path through a temp file in the same directory
// followed by a rename, so readers never see a partial file.
func WriteFile(path string, g *core.Graph) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("lsa: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Write(tmp, g); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("lsa: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("lsa: rename: %w", err)
	}

	return nil
}

// checkIDs rejects ids that would not survive a round trip through Parse.
// nodes is sorted, so index i is output line i+1.
func checkIDs(nodes []string) error {
	for i, n := range nodes {
		if strings.Contains(n, pairSep) || strings.IndexFunc(n, unicode.IsSpace) >= 0 {
			return &FormatError{
				Line:   i + 1,
				Text:   n,
				Reason: fmt.Sprintf("node id %q contains %q or whitespace and cannot be written", n, pairSep),
			}
		}
	}

	return nil
}

func formatLine(g *core.Graph, n string) string {
	var sb strings.Builder
	sb.WriteString(n)
	sb.WriteString(pairSep)
	nbrs, _ := g.Neighbors(n)
	for _, m := range nbrs {
		sb.WriteByte(' ')
		sb.WriteString(m)
		sb.WriteString(pairSep)
		sb.WriteString(strconv.FormatInt(g.Distance(n, m), 10))
	}

	return sb.String()
}

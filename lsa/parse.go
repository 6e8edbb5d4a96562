package lsa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lsaroute/core"
)

const (
	pairSep       = ":"
	maxLineLength = 1 << 20
)

// Parse reads the whole input into a new graph. On any error the partially
// built graph is discarded and nil is returned.
//
// Complexity: O(L) over the input length, plus O(1) per declared edge.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := parseLine(g, lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lsa: read: %w", err)
	}

	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile parses the file at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lsa: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadInto parses r and, only on full success, replaces dst's topology with
// the result. On error dst is left exactly as it was.
func LoadInto(dst *core.Graph, r io.Reader) error {
	g, err := Parse(r)
	if err != nil {
		return err
	}
	dst.ReplaceWith(g)

	return nil
}

// LoadFile is LoadInto over the file at path.
func LoadFile(dst *core.Graph, path string) error {
	g, err := ReadFile(path)
	if err != nil {
		return err
	}
	dst.ReplaceWith(g)

	return nil
}

// parseLine handles one non-blank line: "<node>: <nbr>:<w> ...".
func parseLine(g *core.Graph, lineNo int, line string) error {
	fields := strings.Fields(line)
	head := fields[0]
	if !strings.HasSuffix(head, pairSep) {
		return &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("node header %q must end with %q", head, pairSep)}
	}
	node := strings.TrimSuffix(head, pairSep)
	if node == "" || strings.Contains(node, pairSep) {
		return &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("invalid node id in header %q", head)}
	}
	g.AddNode(node)

	for _, tok := range fields[1:] {
		parts := strings.Split(tok, pairSep)
		if len(parts) != 2 || parts[0] == "" {
			return &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("neighbor token %q is not a neighbor:weight pair", tok)}
		}
		w, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("bad weight in %q", tok), Err: err}
		}
		if w < 0 {
			return &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("negative weight in %q", tok)}
		}
		g.AddNode(parts[0])
		g.SetEdge(node, parts[0], w)
	}

	return nil
}

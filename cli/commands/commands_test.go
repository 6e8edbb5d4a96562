package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/config"
	"github.com/katalvlaran/lsaroute/lsa"
)

var netFile = filepath.Join("testdata", "net.lsa")

const netRoutes = `Destination u: t>u Cost: 4
Destination v: t>v Cost: 2
Destination w: t>v>w Cost: 6
Destination x: t>v>x Cost: 5
Destination y: t>v>y Cost: 10
Destination z: t>v>x>z Cost: 13
Unreachable: p q
`

// execute runs the root command with fresh flag state and returns stdout
// and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, logLevel, logFormat, maxDistance = "", "", "", noMaxDistance
	showTree = false
	stepsSource, routeSource, routeTarget, watchSource = "", "", "", ""
	genNodes, genRows, genCols, genProb, genSeed = 6, 3, 3, 0.3, 1
	genMinWeight, genMaxWeight, genLetters, genOutput = 1, 10, false, ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

// ------------------------------------------------------------------------
// show
// ------------------------------------------------------------------------

func TestShowCanonical(t *testing.T) {
	out, _, err := execute(t, "show", netFile)
	require.NoError(t, err)

	g, err := lsa.ParseString(out)
	require.NoError(t, err)
	require.Equal(t, 9, g.NodeCount())
	require.True(t, strings.HasPrefix(out, "p: q:1\n"))
	require.Contains(t, out, "t: u:4 v:2 x:7\n")
}

func TestShowTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.lsa")
	require.NoError(t, os.WriteFile(path, []byte("a: b:1\n"), 0o644))

	out, _, err := execute(t, "show", path, "--tree")
	require.NoError(t, err)
	require.Equal(t, "Topology\n├── a\n│   └── b : 1\n└── b\n    └── a : 1\n", out)
}

func TestShowMalformed(t *testing.T) {
	_, _, err := execute(t, "show", filepath.Join("testdata", "broken.lsa"))
	require.ErrorIs(t, err, lsa.ErrFormat)
	require.Contains(t, err.Error(), "failed to load graph")
}

// ------------------------------------------------------------------------
// steps
// ------------------------------------------------------------------------

func TestStepsTrace(t *testing.T) {
	out, _, err := execute(t, "steps", netFile, "--source", "t")
	require.NoError(t, err)

	require.Contains(t, out, "Step 1: visited t (distance 0)\n  discovered: u=4 via t, v=2 via t, x=7 via t\n")
	require.Contains(t, out, "Step 2: visited v (distance 2)\n  discovered: w=6 via v, x=5 via v, y=10 via v\n")
	require.Contains(t, out, "Step 7: visited z (distance 13)\n  discovered: none\n  visited:    t u v w x y z\n  done\n")
	require.NotContains(t, out, "Step 8")
	require.Equal(t, 7, strings.Count(out, strings.Repeat("-", defaultSeparatorWidth)+"\n"))
}

func TestStepsDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "steps", netFile, "-s", "t", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, 7, strings.Count(stderr, "dijkstra step"))
}

func TestStepsRequiresSource(t *testing.T) {
	_, _, err := execute(t, "steps", netFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no source node")
}

// ------------------------------------------------------------------------
// route
// ------------------------------------------------------------------------

func TestRouteAll(t *testing.T) {
	out, _, err := execute(t, "route", netFile, "--source", "t")
	require.NoError(t, err)
	require.Equal(t, netRoutes, out)
}

func TestRouteTarget(t *testing.T) {
	out, _, err := execute(t, "route", netFile, "-s", "t", "--target", "z")
	require.NoError(t, err)
	require.Equal(t, "Destination z: t>v>x>z Cost: 13\n", out)

	_, _, err = execute(t, "route", netFile, "-s", "t", "--target", "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to find route to "p"`)
}

func TestRouteMaxDistance(t *testing.T) {
	out, _, err := execute(t, "route", netFile, "-s", "t", "--max-distance", "5")
	require.NoError(t, err)
	require.Equal(t, `Destination u: t>u Cost: 4
Destination v: t>v Cost: 2
Destination x: t>v>x Cost: 5
Out of range: w y z
Unreachable: p q
`, out)
}

func TestRouteUnknownSource(t *testing.T) {
	_, _, err := execute(t, "route", netFile, "-s", "ghost")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to start engine")
}

func TestRouteCancelled(t *testing.T) {
	g, err := lsa.ReadFile(netFile)
	require.NoError(t, err)
	quietSettings(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err = writeRoutes(ctx, &out, g, "t", "")
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, err.Error(), "failed to compute reachability")
	require.Empty(t, out.String())

	out.Reset()
	require.NoError(t, writeRoutes(ctx, &out, g, "t", "z"))
	require.Equal(t, "Destination z: t>v>x>z Cost: 13\n", out.String())
}

func TestRouteFromConfig(t *testing.T) {
	abs, err := filepath.Abs(netFile)
	require.NoError(t, err)
	cfgPath := filepath.Join(t.TempDir(), "lsaroute.yaml")
	body := "input: " + abs + "\nsource: t\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, _, err := execute(t, "route", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, netRoutes, out)
}

func TestRouteNoInput(t *testing.T) {
	_, _, err := execute(t, "route", "-s", "t")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no input file")
}

func TestInvalidLogFormatFlag(t *testing.T) {
	_, _, err := execute(t, "route", netFile, "-s", "t", "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

// ------------------------------------------------------------------------
// generate
// ------------------------------------------------------------------------

func TestGenerateGrid(t *testing.T) {
	out, _, err := execute(t, "generate", "grid", "--rows", "2", "--cols", "2", "--max-weight", "1")
	require.NoError(t, err)
	require.Equal(t, "0,0: 0,1:1 1,0:1\n0,1: 0,0:1 1,1:1\n1,0: 0,0:1 1,1:1\n1,1: 0,1:1 1,0:1\n", out)
}

func TestGenerateRandomToFileIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.lsa"), filepath.Join(dir, "b.lsa")
	for _, path := range []string{a, b} {
		_, _, err := execute(t, "generate", "random", "--nodes", "10", "--seed", "5", "--letters", "--output", path)
		require.NoError(t, err)
	}
	ga, err := lsa.ReadFile(a)
	require.NoError(t, err)
	gb, err := lsa.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, ga.Edges(), gb.Edges())
	require.Equal(t, "A", ga.Nodes()[0])

	out, _, err := execute(t, "route", a, "-s", "A")
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := execute(t, "generate", "torus")
	require.ErrorContains(t, err, "unsupported topology")

	_, _, err = execute(t, "generate", "cycle", "--nodes", "2")
	require.ErrorContains(t, err, "failed to build topology")

	_, _, err = execute(t, "generate", "path", "--min-weight", "5", "--max-weight", "2")
	require.ErrorContains(t, err, "invalid weight range")
}

// ------------------------------------------------------------------------
// watch
// ------------------------------------------------------------------------

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func quietSettings(t *testing.T) {
	t.Helper()
	settings = config.Default()
	settings.Watch.Debounce = 10 * time.Millisecond
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReloadKeepsGraphOnError(t *testing.T) {
	quietSettings(t)
	path := filepath.Join(t.TempDir(), "net.lsa")
	require.NoError(t, os.WriteFile(path, []byte("t: u:4\n"), 0o644))
	g, err := lsa.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("t: u:4 v\n"), 0o644))
	var out bytes.Buffer
	require.False(t, reload(context.Background(), g, path, "t", &out))
	require.Empty(t, out.String())
	require.Equal(t, []string{"t", "u"}, g.Nodes())

	require.NoError(t, os.WriteFile(path, []byte("t: u:4 v:1\n"), 0o644))
	require.True(t, reload(context.Background(), g, path, "t", &out))
	require.Contains(t, out.String(), "Destination v: t>v Cost: 1\n")
	require.Equal(t, []string{"t", "u", "v"}, g.Nodes())
}

func TestWatchLoopReloadsOnWrite(t *testing.T) {
	quietSettings(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "net.lsa")
	require.NoError(t, os.WriteFile(path, []byte("t: u:4\n"), 0o644))
	g, err := lsa.ReadFile(path)
	require.NoError(t, err)

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchLoop(ctx, w, g, path, "t", out) }()

	require.NoError(t, os.WriteFile(path, []byte("t: u:4 z:9\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Destination z: t>z Cost: 9")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.True(t, g.HasNode("z"))
}

package bfs

import "github.com/katalvlaran/lsaroute/core"

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one run.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS walks g outward from startID one hop layer at a time.
// It returns ErrGraphNil or ErrStartVertexNotFound for bad input, and the
// context error if the run is cancelled. On cancellation the partial result
// is returned alongside the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.push(startID, 0)

	return w.res, w.loop()
}

// Partition runs one BFS from start and splits g's nodes into the sorted
// connected component of start and the sorted rest.
func Partition(g *core.Graph, start string, opts ...Option) (reached, unreached []string, err error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, nil, err
	}
	reached, unreached = res.Partition(g)

	return reached, unreached, nil
}

func (w *walker) push(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		// A node removed mid-walk simply has no neighbors.
		neighbors, _ := w.graph.Neighbors(item.id)
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.push(nbr, item.depth+1)
			}
		}
	}

	return nil
}

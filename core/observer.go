// SPDX-License-Identifier: MIT
//
// File: observer.go
// Role: Change-notification hook for display and persistence collaborators.

package core

import "sort"

// Subscribe registers l to receive an Event after every successful mutation.
// The returned cancel func unregisters it; calling cancel more than once is safe.
// A nil listener is ignored and yields a no-op cancel.
//
// Listeners are invoked in registration order.
func (g *Graph) Subscribe(l Listener) (cancel func()) {
	if l == nil {
		return func() {}
	}

	g.muListen.Lock()
	g.nextListener++
	id := g.nextListener
	g.listeners[id] = l
	g.muListen.Unlock()

	return func() {
		g.muListen.Lock()
		delete(g.listeners, id)
		g.muListen.Unlock()
	}
}

// notify delivers ev to a snapshot of the registered listeners. It must be
// called without holding mu.
func (g *Graph) notify(ev Event) {
	g.muListen.Lock()
	if len(g.listeners) == 0 {
		g.muListen.Unlock()
		return
	}
	ids := make([]uint64, 0, len(g.listeners))
	for id := range g.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ls := make([]Listener, len(ids))
	for i, id := range ids {
		ls[i] = g.listeners[id]
	}
	g.muListen.Unlock()

	for _, l := range ls {
		l(ev)
	}
}

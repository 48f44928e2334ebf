package circuit

import "github.com/RuiCat/dkcircuit/incidence"

// netNode is one node of the union-find forest backing net merges. A root
// node (parent == its own handle) holds the net's live entries; a
// merged-away node keeps its original entries so pin lookups can still find
// it, but its entries are no longer iterated when the circuit's nets are
// enumerated.
type netNode struct {
	parent  int
	entries []incidence.Entry
}

// Net is a handle to one net in a Circuit's current partition. It stays
// valid across later Connect calls: if the net it names is merged into
// another, the handle still resolves to the merged survivor.
type Net struct {
	c      *Circuit
	handle int
}

// ID returns the net's current root handle, stable across further merges
// that don't involve this net and suitable as a synthetic label for nets
// with no bound name (e.g. in visualize.RenderNetGraph).
func (n *Net) ID() int { return n.c.find(n.handle) }

// Entries returns the net's current (branch, polarity) membership.
func (n *Net) Entries() []incidence.Entry {
	root := n.c.find(n.handle)
	out := make([]incidence.Entry, len(n.c.nets[root].entries))
	copy(out, n.c.nets[root].entries)
	return out
}

func (c *Circuit) find(h int) int {
	root := h
	for c.nets[root].parent != root {
		root = c.nets[root].parent
	}
	for c.nets[h].parent != root {
		c.nets[h].parent, h = root, c.nets[h].parent
	}
	return root
}

func (c *Circuit) newNet(entries []incidence.Entry) int {
	h := len(c.nets)
	c.nets = append(c.nets, &netNode{parent: h, entries: entries})
	return h
}

// union merges root2's net into root1's: root1's entries gain root2's, and
// root2's node is redirected to root1. Name bindings need no rewriting
// because they are resolved through find() lazily.
func (c *Circuit) union(root1, h int) {
	root2 := c.find(h)
	if root1 == root2 {
		return
	}
	c.nets[root1].entries = append(c.nets[root1].entries, c.nets[root2].entries...)
	c.nets[root2].parent = root1
}

// findNetContaining returns the (root-resolved) handle of the net that owns
// the given (branch,polarity) entry by scanning every net's entries.
func (c *Circuit) findNetContaining(target incidence.Entry) (int, bool) {
	for h, n := range c.nets {
		for _, e := range n.entries {
			if e == target {
				return c.find(h), true
			}
		}
	}
	return 0, false
}

// roots returns the handles of the circuit's live (non-merged-away) nets, in
// ascending creation order.
func (c *Circuit) roots() []int {
	var out []int
	for h := range c.nets {
		if c.find(h) == h {
			out = append(out, h)
		}
	}
	return out
}

package crhs

import "github.com/katalvlaran/crhsys/bitform"

// Level is one layer of a BDD: a linear form (lhs) shared by every node at
// this layer, and the nodes themselves keyed by NodeID. All ids are unique
// across the whole owning System.
type Level struct {
	nodes map[NodeID]Node
	lhs   bitform.Form
}

// NewLevel returns an empty Level with an all-zero form over nvar variables.
func NewLevel(nvar int) Level {
	return Level{nodes: make(map[NodeID]Node), lhs: bitform.NewForm(nvar)}
}

// SetLHS resets lhs to a form over nvar variables with every index in vars
// toggled — repeating an index cancels it, matching the construction
// convenience used when building a BDD from a parsed specification.
func (l *Level) SetLHS(vars []int, nvar int) {
	l.lhs = bitform.NewFormFromVars(nvar, vars)
}

// LHS returns a copy of the level's form.
func (l *Level) LHS() bitform.Form { return l.lhs.Clone() }

// ReplaceLHS overwrites the level's form with newLHS.
func (l *Level) ReplaceLHS(newLHS bitform.Form) { l.lhs = newLHS }

// AddLHS XORs added into the level's form in place.
func (l *Level) AddLHS(added bitform.Form) error { return l.lhs.Xor(added) }

// IsVarSet reports whether variable v participates in this level's form.
func (l *Level) IsVarSet(v int) bool { return l.lhs.Get(v) }

// Nodes returns the level's node map. Callers may mutate it directly; it is
// never replaced out from under a caller holding this reference except via
// ReplaceNodes.
func (l *Level) Nodes() map[NodeID]Node { return l.nodes }

// NodeCount returns the number of nodes at this level.
func (l *Level) NodeCount() int { return len(l.nodes) }

// AddNode inserts a disconnected node with the given id.
func (l *Level) AddNode(id NodeID) { l.nodes[id] = NewNode() }

// AddEdgedNode inserts a node with the given id and edges.
func (l *Level) AddEdgedNode(id NodeID, e0 NodeID, hasE0 bool, e1 NodeID, hasE1 bool) {
	l.nodes[id] = NewNodeWithEdges(e0, hasE0, e1, hasE1)
}

// ReplaceNodes swaps in a whole new node map, discarding the old one.
func (l *Level) ReplaceNodes(nodes map[NodeID]Node) { l.nodes = nodes }

// RemoveNode deletes the node with the given id, if present.
func (l *Level) RemoveNode(id NodeID) { delete(l.nodes, id) }

// RemoveNodesIn deletes every id present as a key in ids.
func (l *Level) RemoveNodesIn(ids map[NodeID]NodeID) {
	for id := range ids {
		delete(l.nodes, id)
	}
}

// RemoveNodesSet deletes every id present in the set.
func (l *Level) RemoveNodesSet(ids map[NodeID]struct{}) {
	for id := range ids {
		delete(l.nodes, id)
	}
}

// RemoveOrphans deletes any node not named in parents, and inserts into
// parents the outgoing edges of every node that survives. Returns true if
// at least one node was removed.
func (l *Level) RemoveOrphans(parents map[NodeID]struct{}) bool {
	before := len(l.nodes)
	toRemove := make(map[NodeID]struct{})
	for id, node := range l.nodes {
		if _, kept := parents[id]; kept {
			delete(parents, id)
			if e0, ok := node.E0(); ok {
				parents[e0] = struct{}{}
			}
			if e1, ok := node.E1(); ok {
				parents[e1] = struct{}{}
			}
		} else {
			toRemove[id] = struct{}{}
		}
	}
	l.RemoveNodesSet(toRemove)
	return before > len(l.nodes)
}

// CheckOutgoingEdges reports whether at least one node at this level has a
// connected 0-edge, and whether at least one has a connected 1-edge.
func (l *Level) CheckOutgoingEdges() (has0, has1 bool) {
	for _, node := range l.nodes {
		if !has0 {
			if _, ok := node.E0(); ok {
				has0 = true
			}
		}
		if !has1 {
			if _, ok := node.E1(); ok {
				has1 = true
			}
		}
		if has0 && has1 {
			break
		}
	}
	return has0, has1
}

// FlipEdges flips e0/e1 on every node at this level.
func (l *Level) FlipEdges() {
	for id, node := range l.nodes {
		node.FlipEdges()
		l.nodes[id] = node
	}
}

// PopSource empties the level's node map and returns its one remaining
// node, for use when absorbing the source of a BDD.
func (l *Level) PopSource() Node {
	var n Node
	for id, node := range l.nodes {
		n = node
		delete(l.nodes, id)
	}
	return n
}

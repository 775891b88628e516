package crhs

// Node is one vertex of a BDD level: two outgoing edges, e0 and e1, each
// either pointing at a node in the level below or nowhere. An edge can
// dangle (name an id no longer present in the BDD) after a node is removed
// elsewhere; callers are responsible for cleaning dangling edges (see
// BDD.removeAllDeadEndsStart / BDD.removeOrphansStart) before relying on them.
type Node struct {
	e0, e1       NodeID
	hasE0, hasE1 bool
}

// NewNode returns a Node with both edges disconnected.
func NewNode() Node {
	return Node{}
}

// NewNodeWithEdges returns a Node with e0/e1 set from the given optional ids.
func NewNodeWithEdges(e0 NodeID, hasE0 bool, e1 NodeID, hasE1 bool) Node {
	return Node{e0: e0, hasE0: hasE0, e1: e1, hasE1: hasE1}
}

// E0 returns the 0-edge target and whether it is connected.
func (n Node) E0() (NodeID, bool) { return n.e0, n.hasE0 }

// E1 returns the 1-edge target and whether it is connected.
func (n Node) E1() (NodeID, bool) { return n.e1, n.hasE1 }

// ConnectE0 points the 0-edge at id.
func (n *Node) ConnectE0(id NodeID) { n.e0, n.hasE0 = id, true }

// ConnectE1 points the 1-edge at id.
func (n *Node) ConnectE1(id NodeID) { n.e1, n.hasE1 = id, true }

// DisconnectE0 clears the 0-edge, so it compares equal to any other
// disconnected 0-edge regardless of the id it used to carry.
func (n *Node) DisconnectE0() { n.e0, n.hasE0 = 0, false }

// DisconnectE1 clears the 1-edge, so it compares equal to any other
// disconnected 1-edge regardless of the id it used to carry.
func (n *Node) DisconnectE1() { n.e1, n.hasE1 = 0, false }

// FlipEdges exchanges e0 and e1.
func (n *Node) FlipEdges() {
	n.e0, n.e1 = n.e1, n.e0
	n.hasE0, n.hasE1 = n.hasE1, n.hasE0
}

// functionKey identifies the function a node computes by its two children,
// used to detect and merge structurally-identical nodes within a level.
type functionKey struct {
	e0, e1       NodeID
	hasE0, hasE1 bool
}

func (n Node) key() functionKey {
	k := functionKey{n.e0, n.e1, n.hasE0, n.hasE1}
	// An absent edge must compare equal regardless of whatever id it used
	// to carry, matching the Rust original's Option<Id> edges.
	if !k.hasE0 {
		k.e0 = 0
	}
	if !k.hasE1 {
		k.e1 = 0
	}
	return k
}

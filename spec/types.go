package spec

// NodeSpec specifies one node of a BDD level: its own id and the ids of the
// nodes its 0- and 1-edges point to. An edge id of 0 means the node has no
// edge in that direction.
type NodeSpec struct {
	ID uint64
	E0 uint64
	E1 uint64
}

// FlipEdge swaps E0 and E1.
func (n *NodeSpec) FlipEdge() {
	n.E0, n.E1 = n.E1, n.E0
}

// LevelSpec specifies one level of a BDD: its linear form, named as the
// variable indices that participate (an entry of -1 is a cancellation
// marker removed by RemoveMinusOne rather than a real variable), and the
// nodes living at that level.
type LevelSpec struct {
	LHS []int64
	RHS []NodeSpec
}

// RemoveMinusOne strips every -1 entry from LHS. If an odd number were
// removed, every node in RHS has its edges flipped — two -1 markers cancel,
// but one left over means the level's sense is inverted relative to how it
// was written.
func (l *LevelSpec) RemoveMinusOne() {
	n := 0
	kept := l.LHS[:0]
	for _, v := range l.LHS {
		if v == -1 {
			n++
			continue
		}
		kept = append(kept, v)
	}
	l.LHS = kept
	if n%2 != 0 {
		l.FlipNodesEdges()
	}
}

// FlipNodesEdges flips the edges of every node in RHS.
func (l *LevelSpec) FlipNodesEdges() {
	for i := range l.RHS {
		l.RHS[i].FlipEdge()
	}
}

// BDDSpec specifies one BDD as an ordered sequence of levels.
type BDDSpec struct {
	ID     uint64
	Levels []LevelSpec
}

// SystemSpec specifies a whole System: its variable count and its BDDs.
type SystemSpec struct {
	NVar int
	BDDs []BDDSpec
}

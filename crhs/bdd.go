package crhs

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/crhsys/bitform"
)

// BDD is a single compressed-right-hand-side equation: an ordered sequence
// of Levels, the first holding exactly one node (the source), the last
// holding exactly one node with no outgoing edges and an all-zero form (the
// sink).
type BDD struct {
	levels    []Level
	id        BddID
	nextLocal uint64
}

// NewBDD returns an empty BDD owned by the given BddID.
func NewBDD(id BddID) BDD {
	return BDD{id: id}
}

// ID returns the BDD's owning id.
func (b *BDD) ID() BddID { return b.id }

// SinkLevelIndex returns the index of the last level.
func (b *BDD) SinkLevelIndex() int { return len(b.levels) - 1 }

// AddLevel appends an empty level over nvar variables.
func (b *BDD) AddLevel(nvar int) { b.levels = append(b.levels, NewLevel(nvar)) }

// AddExistingLevel appends a pre-built level, used when joining BDDs.
func (b *BDD) AddExistingLevel(l Level) { b.levels = append(b.levels, l) }

// Levels returns the BDD's levels. Callers may index into and mutate
// individual levels but must not change the slice's length directly.
func (b *BDD) Levels() []Level { return b.levels }

// LevelsSize returns the number of levels.
func (b *BDD) LevelsSize() int { return len(b.levels) }

// NVar returns the number of variables in the BDD's universe, read off the
// source level's form.
func (b *BDD) NVar() int {
	if len(b.levels) == 0 {
		return 0
	}
	return b.levels[0].lhs.Len()
}

// LHS returns a copy of every level's form except the sink's (which is
// always the zero vector).
func (b *BDD) LHS() []bitform.Form {
	out := make([]bitform.Form, 0, len(b.levels)-1)
	for i := 0; i < len(b.levels)-1; i++ {
		out = append(out, b.levels[i].LHS())
	}
	return out
}

// Size returns the total number of nodes across all levels.
func (b *BDD) Size() int {
	total := 0
	for i := range b.levels {
		total += b.levels[i].NodeCount()
	}
	return total
}

// SetLHSLevel sets the form of the level at levelIndex.
func (b *BDD) SetLHSLevel(levelIndex int, vars []int, nvar int) error {
	if levelIndex < 0 || levelIndex >= len(b.levels) {
		return fmt.Errorf("SetLHSLevel: %w", ErrInvalidLevel)
	}
	b.levels[levelIndex].SetLHS(vars, nvar)
	return nil
}

// ResetNextLocal overrides the BDD's local node-id counter, used only while
// loading a BDD from a parsed specification whose nodes already carry
// explicit ids: next should be one past the highest id used in the spec, so
// subsequently generated ids (e.g. from AddSameEdgesNodeAtLevel) don't
// collide with them.
func (b *BDD) ResetNextLocal(next uint64) { b.nextLocal = next }

func (b *BDD) nextNodeID() NodeID {
	b.nextLocal++
	id, err := NewNodeID(b.nextLocal, b.id)
	if err != nil {
		// Only fails when b.id doesn't fit bddIDBits, which is validated
		// at BDD-registration time by the owning System.
		panic(err)
	}
	return id
}

// AddNodesToLevel packs each spec-local id in specIDs into a global NodeID
// owned by this BDD and inserts a disconnected node for it at levelIndex.
// Returns the packed ids in the same order.
func (b *BDD) AddNodesToLevel(levelIndex int, specIDs []uint64) ([]NodeID, error) {
	if levelIndex < 0 || levelIndex >= len(b.levels) {
		return nil, fmt.Errorf("AddNodesToLevel: %w", ErrInvalidLevel)
	}
	ids := make([]NodeID, 0, len(specIDs))
	for _, local := range specIDs {
		id, err := NewNodeID(local, b.id)
		if err != nil {
			return nil, fmt.Errorf("AddNodesToLevel: %w", err)
		}
		b.levels[levelIndex].AddNode(id)
		ids = append(ids, id)
	}
	return ids, nil
}

// ConnectNodesFromSpec finds, across every level, the node whose spec-local
// id is parentLocal and connects its 0- or 1-edge (per edge1) to the node
// whose spec-local id is childLocal. Used only while loading a BDD from a
// parsed specification: it scans every level, which is fine since specs are
// small at load time.
func (b *BDD) ConnectNodesFromSpec(parentLocal, childLocal uint64, edge1 bool) error {
	parentID, err := NewNodeID(parentLocal, b.id)
	if err != nil {
		return fmt.Errorf("ConnectNodesFromSpec: %w", err)
	}
	childID, err := NewNodeID(childLocal, b.id)
	if err != nil {
		return fmt.Errorf("ConnectNodesFromSpec: %w", err)
	}
	for i := range b.levels {
		node, ok := b.levels[i].nodes[parentID]
		if !ok {
			continue
		}
		if edge1 {
			node.ConnectE1(childID)
		} else {
			node.ConnectE0(childID)
		}
		b.levels[i].nodes[parentID] = node
		return nil
	}
	return fmt.Errorf("ConnectNodesFromSpec: %w", ErrInvalidLevel)
}

func optionEqual(aID NodeID, aHas bool, bID NodeID, bHas bool) bool {
	if aHas != bHas {
		return false
	}
	return !aHas || aID == bID
}

// removeAllDeadEndsStart removes, starting at level start and working
// upward, every node whose edges all dangle or are disconnected — a dead
// end. The sink is never visited (start must not be the sink). Stops early
// once a level produces no removals, since a level with no removed children
// cannot itself gain a dead end.
func (b *BDD) removeAllDeadEndsStart(start int) {
	for i := start; i >= 0; i-- {
		above := &b.levels[i]
		below := &b.levels[i+1]
		toRemove := make(map[NodeID]struct{})
		for id, node := range above.nodes {
			var has0, has1 bool
			if e0, ok := node.E0(); ok {
				if _, exists := below.nodes[e0]; exists {
					has0 = true
				} else {
					node.DisconnectE0()
				}
			}
			if e1, ok := node.E1(); ok {
				if _, exists := below.nodes[e1]; exists {
					has1 = true
				} else {
					node.DisconnectE1()
				}
			}
			above.nodes[id] = node
			if !has0 && !has1 {
				toRemove[id] = struct{}{}
			}
		}
		if len(toRemove) == 0 {
			return
		}
		above.RemoveNodesSet(toRemove)
	}
}

// removeOrphansStart removes, starting at level start and working
// downward, every node not reachable from level start-1. start must not be
// 0 — the source level can never be an orphan.
func (b *BDD) removeOrphansStart(start int) {
	if start == 0 {
		panic("crhs: removeOrphansStart called with start=0")
	}
	parents := make(map[NodeID]struct{}, b.levels[start-1].NodeCount())
	for _, node := range b.levels[start-1].nodes {
		if e0, ok := node.E0(); ok {
			parents[e0] = struct{}{}
		}
		if e1, ok := node.E1(); ok {
			parents[e1] = struct{}{}
		}
	}
	for i := start; i < len(b.levels)-1; i++ {
		if !b.levels[i].RemoveOrphans(parents) {
			return
		}
	}
}

// Swap exchanges the adjacent levels at above and below (below == above+1),
// rebuilding the intervening node function table so that downstream
// structure is preserved. Level forms are swapped along with the nodes.
func (b *BDD) Swap(above, below int) error {
	if below != above+1 {
		return fmt.Errorf("Swap: %w (above=%d below=%d)", ErrNotAdjacent, above, below)
	}
	if above < 0 || below >= len(b.levels) {
		return fmt.Errorf("Swap: %w", ErrInvalidLevel)
	}

	aboveLevel := &b.levels[above]
	belowLevel := &b.levels[below]
	maxSize := belowLevel.NodeCount() * 2
	known := make(map[functionKey]NodeID, maxSize)
	newNodes := make(map[NodeID]Node, maxSize)

	type grandchildren struct {
		e0, e1       NodeID
		hasE0, hasE1 bool
	}

	for id, node := range aboveLevel.nodes {
		var via0, via1 grandchildren
		if e0, ok := node.E0(); ok {
			if child, exists := belowLevel.nodes[e0]; exists {
				via0.e0, via0.hasE0 = child.E0()
				via0.e1, via0.hasE1 = child.E1()
			} else {
				node.DisconnectE0()
			}
		}
		if e1, ok := node.E1(); ok {
			if child, exists := belowLevel.nodes[e1]; exists {
				via1.e0, via1.hasE0 = child.E0()
				via1.e1, via1.hasE1 = child.E1()
			} else {
				node.DisconnectE1()
			}
		}

		if via0.hasE0 || via1.hasE0 {
			key := functionKey{via0.e0, via1.e0, via0.hasE0, via1.hasE0}
			if existing, ok := known[key]; ok {
				node.ConnectE0(existing)
			} else {
				newID := b.nextNodeID()
				node.ConnectE0(newID)
				newNodes[newID] = NewNodeWithEdges(via0.e0, via0.hasE0, via1.e0, via1.hasE0)
				known[key] = newID
			}
		} else {
			node.DisconnectE0()
		}

		if via0.hasE1 || via1.hasE1 {
			key := functionKey{via0.e1, via1.e1, via0.hasE1, via1.hasE1}
			if existing, ok := known[key]; ok {
				node.ConnectE1(existing)
			} else {
				newID := b.nextNodeID()
				node.ConnectE1(newID)
				newNodes[newID] = NewNodeWithEdges(via0.e1, via0.hasE1, via1.e1, via1.hasE1)
				known[key] = newID
			}
		} else {
			node.DisconnectE1()
		}

		aboveLevel.nodes[id] = node
	}

	belowLevel.ReplaceNodes(newNodes)
	lhsAbove, lhsBelow := aboveLevel.LHS(), belowLevel.LHS()
	aboveLevel.ReplaceLHS(lhsBelow)
	belowLevel.ReplaceLHS(lhsAbove)
	return nil
}

// Add XORs the form at levelAbove into the form at levelBelow (levelAbove <
// levelBelow), swapping levels down into adjacency first if needed. Node
// structure below is rebuilt so that taking the 1-edge at levelAbove now
// also flips which branch of the old child is reached, which is exactly
// what XORing the forms means semantically.
func (b *BDD) Add(levelAbove, levelBelow int) error {
	if levelAbove >= levelBelow {
		return fmt.Errorf("Add: %w (above=%d below=%d)", ErrInvalidLevel, levelAbove, levelBelow)
	}
	if levelBelow >= len(b.levels) || levelAbove < 0 {
		return fmt.Errorf("Add: %w", ErrInvalidLevel)
	}
	for levelBelow > levelAbove+1 {
		if err := b.Swap(levelAbove, levelAbove+1); err != nil {
			return fmt.Errorf("Add: %w", err)
		}
		levelAbove++
	}

	aboveLevel := &b.levels[levelAbove]
	belowLevel := &b.levels[levelBelow]
	maxSize := belowLevel.NodeCount() * 2
	newNodes := make(map[NodeID]Node, maxSize)
	known := make(map[functionKey]NodeID, maxSize)

	for id, node := range aboveLevel.nodes {
		if e0, ok := node.E0(); ok {
			if child, exists := belowLevel.nodes[e0]; exists {
				c0, h0 := child.E0()
				c1, h1 := child.E1()
				key := functionKey{c0, c1, h0, h1}
				if existing, ok := known[key]; ok {
					node.ConnectE0(existing)
				} else {
					newNodes[e0] = NewNodeWithEdges(c0, h0, c1, h1)
					known[key] = e0
				}
			} else {
				node.DisconnectE0()
			}
		}
		if e1, ok := node.E1(); ok {
			if child, exists := belowLevel.nodes[e1]; exists {
				// Flipped order: taking the 1-edge above means the child's
				// own branches are now reached with their meaning reversed.
				c0, h0 := child.E1()
				c1, h1 := child.E0()
				key := functionKey{c0, c1, h0, h1}
				if existing, ok := known[key]; ok {
					node.ConnectE1(existing)
				} else {
					newID := b.nextNodeID()
					node.ConnectE1(newID)
					newNodes[newID] = NewNodeWithEdges(c0, h0, c1, h1)
					known[key] = newID
				}
			} else {
				node.DisconnectE1()
			}
		}
		aboveLevel.nodes[id] = node
	}

	belowLevel.ReplaceNodes(newNodes)
	return belowLevel.AddLHS(aboveLevel.LHS())
}

// Drop eliminates the level at levelIndex, which must carry an isolated
// variable: it is swapped down until it sits directly above the sink, and
// the level above it is reconnected straight to the sink, bypassing the
// dropped level entirely.
func (b *BDD) Drop(levelIndex int) error {
	n := len(b.levels)
	if levelIndex < 0 || levelIndex > n-2 {
		return fmt.Errorf("Drop: %w", ErrInvalidLevel)
	}
	for levelIndex != n-2 {
		if err := b.Swap(levelIndex, levelIndex+1); err != nil {
			return fmt.Errorf("Drop: %w", err)
		}
		levelIndex++
	}

	if levelIndex != 0 {
		var sinkID NodeID
		for id := range b.levels[n-1].nodes {
			sinkID = id
			break
		}
		above := &b.levels[n-3]
		for id, node := range above.nodes {
			if _, ok := node.E0(); ok {
				node.ConnectE0(sinkID)
			}
			if _, ok := node.E1(); ok {
				node.ConnectE1(sinkID)
			}
			above.nodes[id] = node
		}
	}

	b.levels = append(b.levels[:levelIndex], b.levels[levelIndex+1:]...)
	if levelIndex > 1 {
		b.MergeEqualsNodeStart(levelIndex - 1)
	}
	return nil
}

// Absorb eliminates the level at levelIndex, which is assumed to hold only
// outgoing edges in the direction named by edge (e.g. every node has an
// e1, no e0, if edge is true). Parents are reconnected straight to the kept
// child, and the BDD is swept for dead ends, orphans, and now-equal nodes.
// Returns ErrInfeasible if no node has an edge in the kept direction at all
// (the level's only outgoing edges are the ones being discarded).
func (b *BDD) Absorb(levelIndex int, edge bool) error {
	if levelIndex == 0 {
		return b.absorbSource(edge)
	}
	if levelIndex < 0 || levelIndex >= len(b.levels)-1 {
		return fmt.Errorf("Absorb: %w", ErrInvalidLevel)
	}

	level := &b.levels[levelIndex]
	newLevel := make(map[NodeID]NodeID, level.NodeCount())
	for id, node := range level.nodes {
		if edge {
			if e1, ok := node.E1(); ok {
				newLevel[id] = e1
			}
		} else if e0, ok := node.E0(); ok {
			newLevel[id] = e0
		}
	}
	if len(newLevel) == 0 {
		return fmt.Errorf("Absorb: %w", ErrInfeasible)
	}

	b.pointAllParentsToNewLevelMap(newLevel, levelIndex-1, levelIndex)
	b.levels = append(b.levels[:levelIndex], b.levels[levelIndex+1:]...)
	b.removeAllDeadEndsStart(levelIndex - 1)
	b.removeOrphansStart(levelIndex)
	b.MergeEqualsNodeStart(levelIndex - 1)
	return nil
}

func (b *BDD) absorbSource(edge bool) error {
	node := b.levels[0].PopSource()
	e0, hasE0 := node.E0()
	e1, hasE1 := node.E1()
	if !optionEqual(e0, hasE0, e1, hasE1) {
		if !edge {
			if hasE1 {
				b.levels[1].RemoveNode(e1)
			}
		} else if hasE0 {
			b.levels[1].RemoveNode(e0)
		}
	}
	b.levels = b.levels[1:]
	if b.levels[0].NodeCount() == 0 {
		return fmt.Errorf("absorbSource: %w", ErrInfeasible)
	}
	b.removeOrphansStart(1)
	return nil
}

// ScanAbsorbLinEq repeatedly finds and absorbs levels with no branching
// (only outgoing 0-edges, only outgoing 1-edges, or an all-zero form) and
// returns every non-trivial LinEq pulled out this way, in the order found.
func (b *BDD) ScanAbsorbLinEq() ([]LinEq, error) {
	var absorbed []LinEq
	for {
		progressed := false
		for i := 0; i < len(b.levels)-1; i++ {
			level := &b.levels[i]
			if len(level.lhs.SetBits()) == 0 {
				if err := b.Absorb(i, false); err != nil {
					return absorbed, fmt.Errorf("ScanAbsorbLinEq: %w", err)
				}
				progressed = true
				break
			}
			has0, has1 := level.CheckOutgoingEdges()
			switch {
			case !has0:
				absorbed = append(absorbed, NewLinEq(level.LHS(), true))
				if err := b.Absorb(i, true); err != nil {
					return absorbed, fmt.Errorf("ScanAbsorbLinEq: %w", err)
				}
				progressed = true
			case !has1:
				absorbed = append(absorbed, NewLinEq(level.LHS(), false))
				if err := b.Absorb(i, false); err != nil {
					return absorbed, fmt.Errorf("ScanAbsorbLinEq: %w", err)
				}
				progressed = true
			}
			if progressed {
				break
			}
		}
		if !progressed {
			return absorbed, nil
		}
	}
}

// AddSameEdgesNodeAtLevel inserts, at levelIndex, one same-edges node
// (e0==e1) per child of levelIndex-1 that levelIndex itself doesn't already
// hold — removing any "jumping" edge that skips directly from levelIndex-1
// to a level further down. Intended for use only while loading a BDD from a
// parsed specification, since jumping edges cannot otherwise arise.
// Reports whether any node was added.
func (b *BDD) AddSameEdgesNodeAtLevel(levelIndex int) (bool, error) {
	if levelIndex <= 0 || levelIndex >= len(b.levels) {
		if levelIndex == 0 {
			return false, nil
		}
		return false, fmt.Errorf("AddSameEdgesNodeAtLevel: %w", ErrInvalidLevel)
	}

	above := &b.levels[levelIndex-1]
	childs := make(map[NodeID]struct{}, above.NodeCount())
	for _, node := range above.nodes {
		if e0, ok := node.E0(); ok {
			childs[e0] = struct{}{}
		}
		if e1, ok := node.E1(); ok {
			childs[e1] = struct{}{}
		}
	}
	level := &b.levels[levelIndex]
	for id := range level.nodes {
		delete(childs, id)
	}
	if len(childs) == 0 {
		return false, nil
	}

	newLevelMap := make(map[NodeID]NodeID, len(childs))
	for child := range childs {
		newID := b.nextNodeID()
		level.AddEdgedNode(newID, child, true, child, true)
		newLevelMap[child] = newID
	}
	b.pointAllParentsToNewLevelMap(newLevelMap, 0, levelIndex)
	return true, nil
}

// MergeEqualsNodeStart merges, starting at levelIndex and working upward,
// any nodes within a level that compute the same function (identical
// (e0,e1) pair), redirecting their parents to a single survivor. Stops
// early once a level produces no merges.
func (b *BDD) MergeEqualsNodeStart(levelIndex int) {
	changed := true
	for changed && levelIndex > 1 {
		changed = false
		level := &b.levels[levelIndex]
		known := make(map[functionKey]NodeID, level.NodeCount())
		mapping := make(map[NodeID]NodeID, level.NodeCount())
		for id, node := range level.nodes {
			key := node.key()
			if existing, ok := known[key]; ok {
				changed = true
				mapping[id] = existing
			} else {
				known[key] = id
			}
		}
		b.pointAllParentsToNewLevelMap(mapping, levelIndex-1, levelIndex)
		level.RemoveNodesIn(mapping)
		levelIndex--
	}
}

func (b *BDD) pointAllParentsToNewLevelMap(mapping map[NodeID]NodeID, levelStart, levelMax int) {
	for i := levelStart; i < levelMax; i++ {
		level := &b.levels[i]
		for id, node := range level.nodes {
			changed := false
			if e0, ok := node.E0(); ok {
				if newID, ok := mapping[e0]; ok {
					node.ConnectE0(newID)
					changed = true
				}
			}
			if e1, ok := node.E1(); ok {
				if newID, ok := mapping[e1]; ok {
					node.ConnectE1(newID)
					changed = true
				}
			}
			if changed {
				level.nodes[id] = node
			}
		}
	}
}

// MergeSinkSource splices the single-node level at sinkLevelIndex+1 (the
// source of a BDD being appended) into the single-node level at
// sinkLevelIndex (the sink of the BDD being extended), then removes the
// now-redundant source level. Used when joining two BDDs into one chain.
func (b *BDD) MergeSinkSource(sinkLevelIndex int) {
	sourceLevel := &b.levels[sinkLevelIndex+1]
	sinkLevel := &b.levels[sinkLevelIndex]

	var sourceNode Node
	for _, n := range sourceLevel.nodes {
		sourceNode = n
		break
	}
	for id, sinkNode := range sinkLevel.nodes {
		if e0, ok := sourceNode.E0(); ok {
			sinkNode.ConnectE0(e0)
		}
		if e1, ok := sourceNode.E1(); ok {
			sinkNode.ConnectE1(e1)
		}
		sinkLevel.nodes[id] = sinkNode
		break
	}

	sinkLevel.ReplaceLHS(sourceLevel.LHS())
	b.levels = append(b.levels[:sinkLevelIndex+1], b.levels[sinkLevelIndex+2:]...)
}

// DefaultPathEnumerationLimit bounds GetAllValidPaths when callers pass
// limit <= 0, so a diagnostic call against an unexpectedly large BDD can't
// exhaust memory.
const DefaultPathEnumerationLimit = 20

// GetAllValidPaths walks every accepting root-to-sink path and returns each
// as a slice of LinEq, one per level traversed, recording which edge was
// taken. This enumerates the full solution set of the equation the BDD
// represents and is exponential in the worst case: once more than limit
// paths are found (or the non-positive default of 20), enumeration stops
// and the partial result is returned.
func (b *BDD) GetAllValidPaths(limit int) [][]LinEq {
	if limit <= 0 {
		limit = DefaultPathEnumerationLimit
	}
	if b.SinkLevelIndex() == 0 {
		return [][]LinEq{{}}
	}

	type frame struct {
		path                 []LinEq
		levelIndex           int
		e0, e1               NodeID
		hasE0, hasE1         bool
	}
	var stack []frame
	var paths [][]LinEq

	for len(stack) > 0 || len(paths) == 0 {
		var path []LinEq
		var levelIndex int
		var e0, e1 NodeID
		var hasE0, hasE1 bool
		visited := false

		if len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			path, levelIndex, e0, hasE0, e1, hasE1 = f.path, f.levelIndex, f.e0, f.hasE0, f.e1, f.hasE1
			visited = true
		} else {
			var source Node
			for _, n := range b.levels[0].nodes {
				source = n
				break
			}
			e0, hasE0 = source.E0()
			e1, hasE1 = source.E1()
		}

		for hasE0 || hasE1 {
			if visited {
				path = append(path, NewLinEq(b.levels[levelIndex].LHS(), true))
				hasE0, hasE1 = false, false
				if node, ok := b.levels[levelIndex+1].nodes[e1]; ok {
					e0, hasE0 = node.E0()
					e1, hasE1 = node.E1()
				}
				levelIndex++
				visited = false
				continue
			}
			if hasE0 && hasE1 {
				stack = append(stack, frame{
					path:       append([]LinEq(nil), path...),
					levelIndex: levelIndex,
					e0:         e0, hasE0: hasE0,
					e1: e1, hasE1: hasE1,
				})
			}
			if hasE0 {
				path = append(path, NewLinEq(b.levels[levelIndex].LHS(), false))
				next := e0
				hasE0, hasE1 = false, false
				if node, ok := b.levels[levelIndex+1].nodes[next]; ok {
					e0, hasE0 = node.E0()
					e1, hasE1 = node.E1()
				}
				levelIndex++
				continue
			}
			path = append(path, NewLinEq(b.levels[levelIndex].LHS(), true))
			next := e1
			hasE0, hasE1 = false, false
			if node, ok := b.levels[levelIndex+1].nodes[next]; ok {
				e0, hasE0 = node.E0()
				e1, hasE1 = node.E1()
			}
			levelIndex++
		}

		paths = append(paths, path)
		if len(paths) > limit {
			return paths
		}
	}
	return paths
}

// CountPaths counts accepting root-to-sink paths without enumerating them,
// by summing child weights bottom-up (a node with a dangling or missing
// child contributes 0 along that edge; a child with weight 0 that does
// exist is the sink and contributes 1). Returns ErrPathCountOverflow if the
// count would exceed a uint64.
func (b *BDD) CountPaths() (uint64, error) {
	if len(b.levels) < 2 {
		return 0, nil
	}
	prev := make(map[NodeID]uint64)
	for i := len(b.levels) - 1; i >= 0; i-- {
		cur := make(map[NodeID]uint64, b.levels[i].NodeCount())
		for id, node := range b.levels[i].nodes {
			var w0, w1 uint64
			if e0, ok := node.E0(); ok {
				if wt, found := prev[e0]; found {
					if wt == 0 {
						w0 = 1
					} else {
						w0 = wt
					}
				}
			}
			if e1, ok := node.E1(); ok {
				if wt, found := prev[e1]; found {
					if wt == 0 {
						w1 = 1
					} else {
						w1 = wt
					}
				}
			}
			sum, carry := bits.Add64(w0, w1, 0)
			if carry != 0 {
				return 0, fmt.Errorf("CountPaths: %w", ErrPathCountOverflow)
			}
			cur[id] = sum
		}
		prev = cur
	}
	for _, w := range prev {
		return w, nil
	}
	return 0, nil
}

// ReplaceVarInBdd substitutes variable v everywhere it appears in the BDD's
// forms with eq's linear combination: every level whose form names v gets
// eq's form XORed in, and has its edges flipped if eq's value is true. Any
// level driven to the all-zero form by this substitution is then absorbed
// (deepest first, so absorbing one doesn't shift the index of another still
// pending).
func (b *BDD) ReplaceVarInBdd(v int, eq LinEq) error {
	var toAbsorb []int
	for i := range b.levels {
		level := &b.levels[i]
		if !level.IsVarSet(v) {
			continue
		}
		if err := level.AddLHS(eq.LHS()); err != nil {
			return fmt.Errorf("ReplaceVarInBdd: %w", err)
		}
		if eq.RHS() {
			level.FlipEdges()
		}
		if _, ok := level.lhs.LowestSetBit(); !ok {
			toAbsorb = append(toAbsorb, i)
		}
	}
	for i := len(toAbsorb) - 1; i >= 0; i-- {
		if err := b.Absorb(toAbsorb[i], false); err != nil {
			return fmt.Errorf("ReplaceVarInBdd: %w", err)
		}
	}
	return nil
}

// Equal reports whether b and other represent the same function: same
// level count, same node count, same per-level forms, and node-for-node
// isomorphic edges once mapped from b's source to other's source. Both
// BDDs should be fully reduced (ScanAbsorbLinEq'd and merged) before
// comparing, or structurally-equivalent-but-differently-shaped BDDs will
// compare unequal.
func (b *BDD) Equal(other *BDD) bool {
	if len(b.levels) != len(other.levels) || b.Size() != other.Size() {
		return false
	}
	aLHS, oLHS := b.LHS(), other.LHS()
	for i := range aLHS {
		if !aLHS[i].Equal(oLHS[i]) {
			return false
		}
	}

	mapping := make(map[NodeID]NodeID)
	var selfSrc, otherSrc NodeID
	for id := range b.levels[0].nodes {
		selfSrc = id
		break
	}
	for id := range other.levels[0].nodes {
		otherSrc = id
		break
	}
	mapping[selfSrc] = otherSrc

	for levelIdx := range b.levels {
		for id, node := range b.levels[levelIdx].nodes {
			otherID, ok := mapping[id]
			if !ok {
				continue
			}
			otherNode, ok := other.levels[levelIdx].nodes[otherID]
			if !ok {
				return false
			}
			e0, h0 := node.E0()
			oe0, oh0 := otherNode.E0()
			if h0 != oh0 {
				return false
			}
			if h0 {
				mapping[e0] = oe0
			}
			e1, h1 := node.E1()
			oe1, oh1 := otherNode.E1()
			if h1 != oh1 {
				return false
			}
			if h1 {
				mapping[e1] = oe1
			}
		}
	}
	return true
}

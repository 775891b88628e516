package crhs

import "fmt"

// bddIDBits is the width reserved, in the low bits of every NodeID, for the
// id of the owning BDD. The remaining high bits are a counter local to that
// BDD, so two BDDs built independently never collide on a NodeID once
// joined into the same System.
const bddIDBits = 24

// MaxBDDs is the largest number of distinct BDDs a single System can host
// under the packed id scheme (1 << bddIDBits).
const MaxBDDs = 1 << bddIDBits

// BddID identifies a BDD within a System.
type BddID uint32

// NodeID identifies a Node within a System: the low bddIDBits bits are its
// owning BddID, the high bits are a counter local to that BDD. The zero
// value is never a valid node id (BDDs number their nodes starting at 1).
type NodeID uint64

// NewNodeID packs a BDD-local counter value and a BddID into one global
// NodeID. Returns ErrTooManyBDDs if bdd does not fit in bddIDBits.
func NewNodeID(local uint64, bdd BddID) (NodeID, error) {
	if uint64(bdd) >= MaxBDDs {
		return 0, fmt.Errorf("NewNodeID: %w (bdd=%d)", ErrTooManyBDDs, bdd)
	}
	return NodeID(local<<bddIDBits) | NodeID(bdd), nil
}

// BDD returns the owning BddID encoded in id.
func (id NodeID) BDD() BddID {
	return BddID(id & (1<<bddIDBits - 1))
}

// Local returns the BDD-local counter value encoded in id.
func (id NodeID) Local() uint64 {
	return uint64(id) >> bddIDBits
}

func (id NodeID) String() string {
	return fmt.Sprintf("n%d.%d", id.BDD(), id.Local())
}

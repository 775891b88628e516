package system

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/katalvlaran/crhsys/crhs"
)

// System holds a set of crhs.BDD values sharing one variable universe, plus
// the LinBank accumulating the linear equations pulled out of them. All
// exported methods are safe for concurrent use; a single RWMutex guards the
// bdd set and the bank together, since most operations touch both (pushing
// an equation to the bank immediately substitutes it back into every BDD).
type System struct {
	mu      sync.RWMutex
	bdds    map[crhs.BddID]*crhs.BDD
	nvar    int
	linBank LinBank
}

// New returns an empty System with the given variable count.
func New(nvar int) *System {
	return &System{bdds: make(map[crhs.BddID]*crhs.BDD), nvar: nvar}
}

// FromElem builds a System from a slice of BDDs, taking its variable count
// from the first one. Returns ErrEmptySystem if bdds is empty, or whatever
// PushBDD reports for a later mismatch or duplicate id.
func FromElem(bdds []crhs.BDD) (*System, error) {
	if len(bdds) == 0 {
		return nil, fmt.Errorf("FromElem: %w", ErrEmptySystem)
	}
	s := New(bdds[0].NVar())
	for i := range bdds {
		if err := s.PushBDD(bdds[i]); err != nil {
			return nil, fmt.Errorf("FromElem: %w", err)
		}
	}
	return s, nil
}

// NVar returns the System's variable count.
func (s *System) NVar() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nvar
}

// SetNVar overrides the System's variable count. Intended only for building
// a System from scratch, before any BDD is pushed.
func (s *System) SetNVar(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nvar = n
}

// PushBDD adds bdd to the System. Returns ErrNvarMismatch if bdd's variable
// count doesn't match the System's, or ErrDuplicateBddID if its id is
// already present.
func (s *System) PushBDD(bdd crhs.BDD) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushBDDLocked(bdd)
}

func (s *System) pushBDDLocked(bdd crhs.BDD) error {
	if bdd.NVar() != s.nvar {
		return fmt.Errorf("PushBDD: %w (got %d want %d)", ErrNvarMismatch, bdd.NVar(), s.nvar)
	}
	if _, exists := s.bdds[bdd.ID()]; exists {
		return fmt.Errorf("PushBDD: %w (id=%d)", ErrDuplicateBddID, bdd.ID())
	}
	cp := bdd
	s.bdds[bdd.ID()] = &cp
	return nil
}

// GetBDD returns the BDD registered under id. The returned pointer aliases
// the System's own copy; callers needing isolation should use Split.
func (s *System) GetBDD(id crhs.BddID) (*crhs.BDD, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getBDDLocked(id)
}

func (s *System) getBDDLocked(id crhs.BddID) (*crhs.BDD, error) {
	bdd, ok := s.bdds[id]
	if !ok {
		return nil, fmt.Errorf("GetBDD: %w (id=%d)", ErrBddNotFound, id)
	}
	return bdd, nil
}

// PopBDD removes and returns the BDD registered under id.
func (s *System) PopBDD(id crhs.BddID) (*crhs.BDD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.popBDDLocked(id)
}

func (s *System) popBDDLocked(id crhs.BddID) (*crhs.BDD, error) {
	bdd, ok := s.bdds[id]
	if !ok {
		return nil, fmt.Errorf("PopBDD: %w (id=%d)", ErrBddNotFound, id)
	}
	delete(s.bdds, id)
	return bdd, nil
}

// Split removes the BDDs named by ids from s and returns them, together with
// a copy of s's current LinBank, as a new independent System.
func (s *System) Split(ids []crhs.BddID) (*System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bdds := make([]crhs.BDD, 0, len(ids))
	for _, id := range ids {
		bdd, err := s.popBDDLocked(id)
		if err != nil {
			return nil, fmt.Errorf("Split: %w", err)
		}
		bdds = append(bdds, *bdd)
	}
	sub := New(s.nvar)
	for i := range bdds {
		if err := sub.pushBDDLocked(bdds[i]); err != nil {
			return nil, fmt.Errorf("Split: %w", err)
		}
	}
	sub.linBank = s.linBank.Clone()
	return sub, nil
}

// Merge drains other's BDDs (discarding any reduced to just the sink, i.e.
// LevelsSize() <= 1) and linear equations into s. other is left empty.
func (s *System) Merge(other *System) error {
	other.mu.Lock()
	bdds := other.bdds
	other.bdds = make(map[crhs.BddID]*crhs.BDD)
	lineqs := other.linBank.linEqs
	other.linBank.linEqs = nil
	other.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bdd := range bdds {
		if bdd.LevelsSize() <= 1 {
			continue
		}
		if err := s.pushBDDLocked(*bdd); err != nil {
			return fmt.Errorf("Merge: %w", err)
		}
	}
	for _, eq := range lineqs {
		if _, _, err := s.pushLinEqToLinBankLocked(eq); err != nil {
			return fmt.Errorf("Merge: %w", err)
		}
	}
	return nil
}

// JoinBDDs splices bdd2's levels onto the end of bdd1 (merging bdd1's sink
// with bdd2's source) and removes bdd2 from the System, returning bdd1's id.
// Returns ErrSameBdd if id1 == id2.
func (s *System) JoinBDDs(id1, id2 crhs.BddID) (crhs.BddID, error) {
	if id1 == id2 {
		return 0, fmt.Errorf("JoinBDDs: %w", ErrSameBdd)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.joinBDDsLocked(id1, id2)
}

func (s *System) joinBDDsLocked(id1, id2 crhs.BddID) (crhs.BddID, error) {
	bdd1, err := s.getBDDLocked(id1)
	if err != nil {
		return 0, fmt.Errorf("JoinBDDs: %w", err)
	}
	bdd2, err := s.getBDDLocked(id2)
	if err != nil {
		return 0, fmt.Errorf("JoinBDDs: %w", err)
	}

	sinkLevelIdx := bdd1.SinkLevelIndex()
	for _, level := range bdd2.Levels() {
		bdd1.AddExistingLevel(level)
	}
	bdd1.MergeSinkSource(sinkLevelIdx)
	delete(s.bdds, id2)
	return id1, nil
}

// Swap exchanges two adjacent levels of the named BDD. above and below must
// be adjacent (below == above+1) and below must be above the sink.
func (s *System) Swap(bddID crhs.BddID, above, below int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return fmt.Errorf("Swap: %w", err)
	}
	if below >= bdd.SinkLevelIndex() {
		return fmt.Errorf("Swap: %w (below=%d sink=%d)", crhs.ErrLevelOutOfRange, below, bdd.SinkLevelIndex())
	}
	return bdd.Swap(above, below)
}

// Add XORs the form at levelAbove into the form at levelBelow of the named
// BDD. levelAbove must precede levelBelow and levelBelow must be above the
// sink.
func (s *System) Add(bddID crhs.BddID, levelAbove, levelBelow int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	if levelBelow >= bdd.SinkLevelIndex() {
		return fmt.Errorf("Add: %w (below=%d sink=%d)", crhs.ErrLevelOutOfRange, levelBelow, bdd.SinkLevelIndex())
	}
	return bdd.Add(levelAbove, levelBelow)
}

// Absorb eliminates a non-branching level of the named BDD. levelIndex must
// be above the sink.
func (s *System) Absorb(bddID crhs.BddID, levelIndex int, edge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return fmt.Errorf("Absorb: %w", err)
	}
	if levelIndex >= bdd.SinkLevelIndex() {
		return fmt.Errorf("Absorb: %w (level=%d sink=%d)", crhs.ErrLevelOutOfRange, levelIndex, bdd.SinkLevelIndex())
	}
	return bdd.Absorb(levelIndex, edge)
}

// Drop eliminates a level carrying an isolated variable from the named BDD.
// levelIndex must be above the sink.
func (s *System) Drop(bddID crhs.BddID, levelIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return fmt.Errorf("Drop: %w", err)
	}
	if levelIndex >= bdd.SinkLevelIndex() {
		return fmt.Errorf("Drop: %w (level=%d sink=%d)", crhs.ErrLevelOutOfRange, levelIndex, bdd.SinkLevelIndex())
	}
	return bdd.Drop(levelIndex)
}

// Fix asserts the linear equation "XOR of the named variables = rhs",
// pushing it to the LinBank and substituting it into every BDD in the
// System. Returns ErrNonIndependentFix if the equation was already implied
// by what the bank knows.
func (s *System) Fix(lhs []int, rhs bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := bitform.NewForm(s.nvar)
	for _, v := range lhs {
		form.Set(v)
	}
	eq := crhs.NewLinEq(form, rhs)
	_, pushed, err := s.pushLinEqToLinBankLocked(eq)
	if err != nil {
		return fmt.Errorf("Fix: %w", err)
	}
	if !pushed {
		return fmt.Errorf("Fix: %w", ErrNonIndependentFix)
	}
	return nil
}

// ScanAbsorbLinEqs repeatedly absorbs non-branching levels of the named BDD,
// pushing each discovered equation to the LinBank and substituting accepted
// ones into every BDD in the System. Returns how many of the equations found
// were linearly independent (and thus accepted).
func (s *System) ScanAbsorbLinEqs(bddID crhs.BddID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return 0, fmt.Errorf("ScanAbsorbLinEqs: %w", err)
	}
	lineqs, err := bdd.ScanAbsorbLinEq()
	if err != nil {
		return 0, fmt.Errorf("ScanAbsorbLinEqs: %w", err)
	}
	accepted := 0
	for _, eq := range lineqs {
		_, pushed, err := s.pushLinEqToLinBankLocked(eq)
		if err != nil {
			return accepted, fmt.Errorf("ScanAbsorbLinEqs: %w", err)
		}
		if pushed {
			accepted++
		}
	}
	return accepted, nil
}

// pushLinEqToLinBankLocked pushes eq to the bank and, if accepted,
// substitutes the pivot variable it pins back into every BDD currently in
// the System. Assumes s.mu is already held for writing.
func (s *System) pushLinEqToLinBankLocked(eq crhs.LinEq) (crhs.LinEq, bool, error) {
	pushed, ok := s.linBank.PushLinEq(eq)
	if !ok {
		return pushed, false, nil
	}
	v, _ := pushed.LHSHighestSetBit()
	for _, bdd := range s.bdds {
		if err := bdd.ReplaceVarInBdd(v, pushed); err != nil {
			return pushed, true, fmt.Errorf("pushLinEqToLinBank: %w", err)
		}
	}
	return pushed, true, nil
}

// Size returns the total node count across every BDD in the System.
func (s *System) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, bdd := range s.bdds {
		total += bdd.Size()
	}
	return total
}

// BddIDs returns the ids of every BDD currently in the System, in no
// particular order.
func (s *System) BddIDs() []crhs.BddID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]crhs.BddID, 0, len(s.bdds))
	for id := range s.bdds {
		ids = append(ids, id)
	}
	return ids
}

// LinBankSize returns the number of equations currently held in the bank.
func (s *System) LinBankSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.linBank.Size()
}

// CountPaths returns the number of accepting paths of the named BDD, without
// enumerating them. See crhs.BDD.CountPaths.
func (s *System) CountPaths(bddID crhs.BddID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bdd, err := s.getBDDLocked(bddID)
	if err != nil {
		return 0, fmt.Errorf("CountPaths: %w", err)
	}
	n, err := bdd.CountPaths()
	if err != nil {
		return 0, fmt.Errorf("CountPaths: %w", err)
	}
	return n, nil
}

// SystemLHS returns, for every BDD in the System, a copy of its levels'
// forms (see crhs.BDD.LHS), keyed by BddID.
func (s *System) SystemLHS() map[crhs.BddID][]bitform.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[crhs.BddID][]bitform.Form, len(s.bdds))
	for id, bdd := range s.bdds {
		out[id] = bdd.LHS()
	}
	return out
}

// BddSizeInfo reports the node-count profile of one BDD: the node count of
// every level except the sink, and the total node count across all levels
// (including the sink). The analyzer package uses this, alongside
// SystemLHS, to score how expensive resolving a dependency or independency
// involving that BDD would be.
type BddSizeInfo struct {
	Levels    []int
	TotalSize int
}

// BddSizes returns a BddSizeInfo for every BDD currently in the System.
func (s *System) BddSizes() map[crhs.BddID]BddSizeInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[crhs.BddID]BddSizeInfo, len(s.bdds))
	for id, bdd := range s.bdds {
		levels := bdd.Levels()
		sizes := make([]int, 0, len(levels)-1)
		for i := 0; i < len(levels)-1; i++ {
			sizes = append(sizes, levels[i].NodeCount())
		}
		out[id] = BddSizeInfo{Levels: sizes, TotalSize: bdd.Size()}
	}
	return out
}

// Solutions is the result of GetSolutions: one assignment per accepting
// path found, plus whether enumeration was capped before every path could
// be explored.
type Solutions struct {
	Assignments [][]*bool
	Capped      bool
}

// GetSolutions extracts the full solution set of the System as it currently
// stands. If no BDDs remain, the LinBank alone is solved. If exactly one
// remains, its accepting paths are enumerated directly. If more than one
// remains, they are first joined into a single BDD (order doesn't affect the
// result, since join is associative on the chain it builds). pathLimit caps
// how many accepting paths are enumerated from the remaining BDD; pass 0 for
// the default cap (crhs.DefaultPathEnumerationLimit). If more paths exist
// than the cap allows, Solutions.Capped reports that the result is partial
// instead of silently dropping the remainder.
//
// Each returned assignment is one entry per variable: a non-nil *bool when
// the variable is pinned, nil when it remains free.
func (s *System) GetSolutions(pathLimit int) (Solutions, error) {
	s.mu.Lock()

	ids := make([]crhs.BddID, 0, len(s.bdds))
	for id := range s.bdds {
		ids = append(ids, id)
	}

	var remaining crhs.BddID
	switch len(ids) {
	case 0:
		lhsRows := s.linBank.LHS()
		rhs := s.linBank.RHS()
		s.mu.Unlock()
		mat, err := bitform.NewMatrixFromRows(lhsRows)
		if err != nil {
			return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
		}
		sol, err := bitform.SolveLinearSystem(mat, rhs)
		if err != nil {
			return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
		}
		return Solutions{Assignments: [][]*bool{sol}}, nil
	case 1:
		remaining = ids[0]
	default:
		remaining = ids[0]
		for _, id := range ids[1:] {
			if _, err := s.joinBDDsLocked(remaining, id); err != nil {
				s.mu.Unlock()
				return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
			}
		}
	}

	bdd, err := s.getBDDLocked(remaining)
	if err != nil {
		s.mu.Unlock()
		return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
	}
	effectiveLimit := pathLimit
	if effectiveLimit <= 0 {
		effectiveLimit = crhs.DefaultPathEnumerationLimit
	}
	paths := bdd.GetAllValidPaths(pathLimit)
	capped := len(paths) > effectiveLimit
	if capped {
		paths = paths[:effectiveLimit]
	}
	baseBank := s.linBank.Clone()
	s.mu.Unlock()

	solutions := make([][]*bool, 0, len(paths))
	for _, path := range paths {
		lb := baseBank.Clone()
		for _, eq := range path {
			lb.PushLinEq(eq)
		}
		mat, err := bitform.NewMatrixFromRows(lb.LHS())
		if err != nil {
			return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
		}
		sol, err := bitform.SolveLinearSystem(mat, lb.RHS())
		if err != nil {
			return Solutions{}, fmt.Errorf("GetSolutions: %w", err)
		}
		solutions = append(solutions, sol)
	}
	return Solutions{Assignments: solutions, Capped: capped}, nil
}

package system

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/crhsys/crhs"
)

// Dump writes s in the textual .bdd format: a header line "<nvar> <nbdds>",
// then one block per BDD (sorted by id) shaped "<id> <nlevels>", one line
// per level ("<lhs>:<nodes>|"), terminated by a literal "---" line. It is
// the write-side counterpart of spec.Parse; round-tripping a dump through
// spec.Parse and spec.Build reconstructs the same BDDs; the System's LinBank
// is not part of the format.
func (s *System) Dump(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]crhs.BddID, 0, len(s.bdds))
	for id := range s.bdds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if _, err := fmt.Fprintf(w, "%d %d\n", s.nvar, len(ids)); err != nil {
		return fmt.Errorf("Dump: %w", err)
	}
	for _, id := range ids {
		bdd := s.bdds[id]
		if _, err := fmt.Fprintf(w, "%d %d\n", bdd.ID(), bdd.LevelsSize()); err != nil {
			return fmt.Errorf("Dump: %w", err)
		}
		for _, level := range bdd.Levels() {
			if _, err := io.WriteString(w, dumpLevel(level)); err != nil {
				return fmt.Errorf("Dump: %w", err)
			}
		}
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return fmt.Errorf("Dump: %w", err)
		}
	}
	return nil
}

func dumpLevel(level crhs.Level) string {
	var b strings.Builder

	bits := level.LHS().SetBits()
	lhsParts := make([]string, len(bits))
	for i, v := range bits {
		lhsParts[i] = strconv.Itoa(v)
	}
	b.WriteString(strings.Join(lhsParts, "+"))
	b.WriteByte(':')

	nodes := level.Nodes()
	localIDs := make([]uint64, 0, len(nodes))
	byLocal := make(map[uint64]crhs.Node, len(nodes))
	for id, node := range nodes {
		localIDs = append(localIDs, id.Local())
		byLocal[id.Local()] = node
	}
	sort.Slice(localIDs, func(i, j int) bool { return localIDs[i] < localIDs[j] })

	for _, local := range localIDs {
		node := byLocal[local]
		b.WriteString(fmt.Sprintf("(%d;%d,%d)", local, edgeLocal(node.E0()), edgeLocal(node.E1())))
	}
	b.WriteString("|\n")
	return b.String()
}

func edgeLocal(id crhs.NodeID, has bool) uint64 {
	if !has {
		return 0
	}
	return id.Local()
}

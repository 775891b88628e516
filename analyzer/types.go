package analyzer

import "github.com/katalvlaran/crhsys/crhs"

// InvolvedBdd describes one BDD's contribution to a Dependency or
// Independency: its id, the node count of each of its levels except the
// sink, its total node count, and which of its levels (indices into
// Levels) actually participate.
type InvolvedBdd struct {
	ID             crhs.BddID
	Levels         []int
	TotalSize      int
	InvolvedLevels []int
}

// sumSkipTake sums levels[skip : skip+take], clamped to len(levels) —
// the Go shape of Rust's iter().skip(skip).take(take).sum().
func sumSkipTake(levels []int, skip, take int) int {
	sum := 0
	end := skip + take
	for i := skip; i < end && i < len(levels); i++ {
		sum += levels[i]
	}
	return sum
}

// levelEntry is the per-BDD bookkeeping used while walking a concatenated
// matrix's set bits back into per-BDD involved levels.
type levelEntry struct {
	id        crhs.BddID
	levels    []int
	totalSize int
}

// involvedBddsFromBits walks bits (indices into a matrix formed by
// concatenating every entry's Levels end to end) and buckets them back
// into one InvolvedBdd per entry whose range contains at least one bit.
func involvedBddsFromBits(bits []int, entries []levelEntry) []InvolvedBdd {
	if len(entries) == 0 || len(bits) == 0 {
		return nil
	}

	var result []InvolvedBdd
	idx := 0
	entry := entries[idx]
	start := 0
	end := len(entry.levels) - 1
	var involved []int

	for _, bit := range bits {
		if bit <= end {
			involved = append(involved, bit-start)
			continue
		}
		if len(involved) > 0 {
			result = append(result, InvolvedBdd{ID: entry.id, Levels: entry.levels, TotalSize: entry.totalSize, InvolvedLevels: involved})
			involved = nil
		}
		for bit > end {
			idx++
			entry = entries[idx]
			start = end + 1
			end += len(entry.levels)
		}
		involved = append(involved, bit-start)
	}
	result = append(result, InvolvedBdd{ID: entry.id, Levels: entry.levels, TotalSize: entry.totalSize, InvolvedLevels: involved})
	return result
}

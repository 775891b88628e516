package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crhsys/analyzer"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/spec"
	"github.com/katalvlaran/crhsys/system"
)

// Snapshot reports solving progress. A Solver's Feedback hook receives one
// after every absorb pass and every resolved dependency or independency, the
// same points the Rust original cleared the screen and printed at.
type Snapshot struct {
	BddsRemaining         int
	NodesRemaining        int
	LinBankSize           int
	BiggestBdd            int
	DependenciesSolved    int
	DependenciesRemaining int
	VariablesDropped      int
}

// Stats summarizes the work a Solver has done so far. Solver.Stats returns a
// copy, safe to read after (or during, from a Feedback hook) a Solve call.
type Stats struct {
	DependenciesSolved    int
	DependenciesRemaining int
	VariablesDropped      int
}

// Solver drives a system.System to a solved state. The zero value is not
// usable; build one with New.
type Solver struct {
	enumerationCap  int
	forbidDropping  []int
	patternGrouping bool
	dropping        bool
	ctx             context.Context
	feedback        func(Snapshot)

	stats Stats
}

// SolverOption configures a Solver at construction time.
type SolverOption func(*Solver)

// WithEnumerationCap bounds how many accepting paths GetSolutions will
// enumerate from the last remaining bdd. n <= 0 keeps the default
// (crhs.DefaultPathEnumerationLimit).
func WithEnumerationCap(n int) SolverOption {
	return func(s *Solver) {
		if n > 0 {
			s.enumerationCap = n
		}
	}
}

// WithForbidDropping lists variable indices a dropping Solver must never
// drop (e.g. key or plaintext bits whose value matters to the caller). Has
// no effect unless combined with WithDropping(true).
func WithForbidDropping(vars []int) SolverOption {
	return func(s *Solver) { s.forbidDropping = vars }
}

// WithPatternGrouping toggles grouping same-shape dependencies before
// picking the cheapest one (analyzer.FindBestBDDPattern). Disabling it falls
// back to a flat minimum-distance scan over every extracted dependency.
func WithPatternGrouping(enabled bool) SolverOption {
	return func(s *Solver) { s.patternGrouping = enabled }
}

// WithDropping turns on independency resolution: at each step the Solver
// compares the cheapest independency against the cheapest dependency and
// resolves whichever is cheaper, dropping a variable's value when an
// independency wins.
func WithDropping(enabled bool) SolverOption {
	return func(s *Solver) { s.dropping = enabled }
}

// WithFeedback registers a hook invoked with a Snapshot after each absorb
// pass and each resolved step, in place of the Rust original's direct stdout
// printing.
func WithFeedback(fn func(Snapshot)) SolverOption {
	return func(s *Solver) { s.feedback = fn }
}

// WithContext sets the context checked for cancellation once per outer
// solving iteration, between absorb passes.
func WithContext(ctx context.Context) SolverOption {
	return func(s *Solver) { s.ctx = ctx }
}

// WithConfig applies every field of a spec.SolverConfig (as loaded by
// spec.LoadSolverConfig) in one call.
func WithConfig(cfg spec.SolverConfig) SolverOption {
	return func(s *Solver) {
		if cfg.EnumerationCap > 0 {
			s.enumerationCap = cfg.EnumerationCap
		}
		s.forbidDropping = cfg.ForbidDropping
		s.patternGrouping = cfg.PatternGrouping
	}
}

// New builds a Solver. Defaults match spec.DefaultSolverConfig: enumeration
// cap crhs.DefaultPathEnumerationLimit, pattern grouping on, dropping off.
func New(opts ...SolverOption) *Solver {
	s := &Solver{
		enumerationCap:  crhs.DefaultPathEnumerationLimit,
		patternGrouping: true,
		ctx:             context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	return s
}

// Stats returns a snapshot of the Solver's own counters. Meaningful only
// after (or during, from within a Feedback hook) a Solve call.
func (s *Solver) Stats() Stats { return s.stats }

// EstimatedSolutionCount returns the number of accepting paths of the named
// bdd in sys without enumerating them, wrapping ErrPathCountOverflow if the
// count itself would overflow a uint64. Callers can use it to decide whether
// a System is worth solving before calling Solve.
func (s *Solver) EstimatedSolutionCount(sys *system.System, bddID crhs.BddID) (uint64, error) {
	n, err := sys.CountPaths(bddID)
	if err != nil {
		return 0, fmt.Errorf("EstimatedSolutionCount: %w", err)
	}
	return n, nil
}

// Solve repeatedly absorbs linear equations, then resolves the cheapest
// remaining dependency (and, if the Solver was built with WithDropping,
// trades that off against the cheapest independency) until no dependency
// remains, and returns the resulting Solutions.
func (s *Solver) Solve(sys *system.System) (system.Solutions, error) {
	if err := absorbAllEquations(sys); err != nil {
		return system.Solutions{}, fmt.Errorf("Solve: %w", err)
	}

	deps := analyzer.ExtractDependencies(sys)
	var indeps []analyzer.Independency
	if s.dropping {
		indeps = analyzer.ExtractIndependencies(sys, s.forbidDropping)
	}
	s.stats.DependenciesRemaining = len(deps)
	s.emit(sys)

	for len(deps) > 0 {
		if err := s.checkCtx(); err != nil {
			return system.Solutions{}, fmt.Errorf("Solve: %w", err)
		}

		candidates := deps
		if s.patternGrouping {
			candidates = analyzer.FindBestBDDPattern(deps)
		}
		depIdx, depDistance := bestDepIndex(candidates)

		resolvedIndep := false
		if s.dropping && len(indeps) > 0 {
			indepIdx, indepDistance := bestIndepIndex(indeps)
			if indepDistance < depDistance {
				ids, levels := indeps[indepIdx].BestJoinOrder()
				if err := indepResolve(sys, ids, levels); err != nil {
					return system.Solutions{}, fmt.Errorf("Solve: %w", err)
				}
				s.stats.VariablesDropped++
				resolvedIndep = true
			}
		}
		if !resolvedIndep {
			ids, levels := candidates[depIdx].BestJoinOrder()
			if err := depResolve(sys, ids, levels); err != nil {
				return system.Solutions{}, fmt.Errorf("Solve: %w", err)
			}
			s.stats.DependenciesSolved++
		}
		s.emit(sys)

		if err := absorbAllEquations(sys); err != nil {
			return system.Solutions{}, fmt.Errorf("Solve: %w", err)
		}
		deps = analyzer.ExtractDependencies(sys)
		if s.dropping {
			indeps = analyzer.ExtractIndependencies(sys, s.forbidDropping)
		}
		s.stats.DependenciesRemaining = len(deps)
		s.emit(sys)
	}

	sol, err := sys.GetSolutions(s.enumerationCap)
	if err != nil {
		return system.Solutions{}, fmt.Errorf("Solve: %w", err)
	}
	return sol, nil
}

func (s *Solver) checkCtx() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

func (s *Solver) emit(sys *system.System) {
	if s.feedback == nil {
		return
	}
	ids := sys.BddIDs()
	snap := Snapshot{
		BddsRemaining:         len(ids),
		NodesRemaining:        sys.Size(),
		LinBankSize:           sys.LinBankSize(),
		DependenciesSolved:    s.stats.DependenciesSolved,
		DependenciesRemaining: s.stats.DependenciesRemaining,
		VariablesDropped:      s.stats.VariablesDropped,
	}
	for _, id := range ids {
		bdd, err := sys.GetBDD(id)
		if err != nil {
			continue
		}
		if sz := bdd.Size(); sz > snap.BiggestBdd {
			snap.BiggestBdd = sz
		}
	}
	s.feedback(snap)
}

package solver

import "github.com/sirupsen/logrus"

// Conflict analysis: resolve the conflict clause backward along reason
// links until it contains a single literal from the current decision
// level (the first unique implication point), then backjump and assert
// that literal. At level 0 the resolution is driven down to the empty
// clause instead, which proves the formula unsatisfiable.

// explainUIP resolves the conflict clause until exactly one of its
// literals was assigned at the current decision level.
func (s *Solver) explainUIP() {
	for s.trail.countAtCurrentLevel(s.conflict.Invert()) != 1 {
		s.explain(s.lastConflictLit())
	}
}

// explainEmpty resolves the conflict clause down to the empty clause.
// Only called at level 0, where every trail entry is a propagation and
// thus has a reason to resolve against.
func (s *Solver) explainEmpty() {
	for !s.conflict.Empty() {
		s.explain(s.lastConflictLit())
	}
}

// lastConflictLit returns the latest trail literal that negates some
// literal of the conflict clause. The conflict clause is falsified by the
// trail, so such a literal must exist; its absence means the trail and
// the conflict got out of sync.
func (s *Solver) lastConflictLit() Lit {
	lit, ok := s.trail.lastAsserted(s.conflict.Invert())
	if !ok {
		panic("explain: conflict clause has no literal on the trail")
	}
	return lit
}

// explain performs one resolution step, eliminating the trail literal lit
// from the conflict using the clause that propagated it.
func (s *Solver) explain(lit Lit) {
	reason := s.reasons.get(lit.Var())
	resolvent := Resolve(s.conflict, reason, lit)
	s.log.WithFields(logrus.Fields{
		"pivot":     lit,
		"conflict":  s.conflict,
		"reason":    reason,
		"resolvent": resolvent,
	}).Debug("resolved")
	s.conflict = resolvent
}

// learnConflict installs the current conflict clause into the database.
// The empty clause is learned too, as a record of the refutation.
func (s *Solver) learnConflict() *Clause {
	learned := NewLearnedClause(s.conflict.lits)
	s.db.learn(learned)
	s.Stats.NbLearned++
	s.log.WithField("clause", learned).Debug("learned")
	return learned
}

// backjump rewinds the trail according to the learned clause and
// asserts its asserting literal. The target is the trail literal at the
// second-highest level among the clause's literals: every entry above
// that level is undone and the asserting literal is propagated at it.
// When there is no such literal, the learned clause is unit and the only
// way to assert it is a full restart to level 0.
func (s *Solver) backjump(learned *Clause) {
	asserting, ok := s.trail.lastAsserted(learned.Invert())
	if !ok {
		panic("backjump: learned clause has no literal on the trail")
	}
	rest := learned.without(asserting.Negation())
	target, ok := s.trail.lastAsserted(rest.Invert())
	if !ok {
		s.restart()
		s.propagate(asserting.Negation(), learned)
		return
	}
	// Pop the first entry above target's level and everything after it, so
	// that target's level stays whole and the learned clause is unit.
	first, level := NullLit, -1
	for _, e := range s.trail.entries {
		if e.lit == target {
			level = e.level
		} else if level >= 0 && e.level > level {
			first = e.lit
			break
		}
	}
	removed := s.trail.backjumpTo(first)
	s.reasons.forget(removed)
	s.log.WithFields(logrus.Fields{
		"target":  target,
		"removed": len(removed),
		"level":   s.trail.currentLevel(),
	}).Debug("backjumped")
	s.propagate(asserting.Negation(), learned)
}

// restart clears the trail and the reason map; the clause database,
// learned clauses included, is kept.
func (s *Solver) restart() {
	s.trail.clear()
	s.reasons.clear()
	s.Stats.NbRestarts++
	s.log.Debug("restarted")
}

package solver

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbConflicts    int
	NbDecisions    int
	NbPropagations int
	NbLearned      int // How many clauses were learned
	NbRestarts     int
}

// A Solver solves a given problem. It is the main data structure.
// A Solver is not safe for concurrent use: a single call to Solve owns
// the trail, the reason map and the clause database until it returns.
type Solver struct {
	// MaxConflicts bounds the search: when positive, Solve gives up and
	// returns Indet once that many conflicts were analyzed. 0 means no
	// bound. The budget is checked at the top of the search loop only.
	MaxConflicts int
	// Stats describe the solving process.
	Stats Stats

	nbVars    int
	db        *clauseDB
	trail     *trail
	reasons   reasonMap
	conflict  *Clause // Clause being resolved during conflict analysis; nil outside of it.
	status    Status
	lastModel []bool
	log       logrus.FieldLogger
}

// New makes a solver, given a problem. nbVars should be consistent with
// the content of the clauses, i.e the biggest variable in them should be
// <= pb.NbVars.
func New(pb *Problem) *Solver {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return &Solver{
		nbVars:  pb.NbVars,
		db:      newClauseDB(pb.Clauses),
		trail:   newTrail(pb.NbVars),
		reasons: reasonMap{},
		status:  Indet,
		log:     quiet,
	}
}

// SetLogger installs a logger for rule-by-rule traces. The traces are
// emitted at debug level, one entry per propagation, decision, resolution
// step, learned clause and backjump.
func (s *Solver) SetLogger(log logrus.FieldLogger) {
	s.log = log
}

// Solve runs the CDCL search until the problem is proven Sat or Unsat, or
// the conflict budget is exhausted. The rule priority is fixed: conflict
// analysis, then unit propagation, then decision.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	for {
		if s.MaxConflicts > 0 && s.Stats.NbConflicts >= s.MaxConflicts {
			s.log.WithField("conflicts", s.Stats.NbConflicts).Debug("conflict budget exhausted")
			return Indet
		}
		if conflict := s.db.findConflict(s.trail); conflict != nil {
			s.Stats.NbConflicts++
			s.conflict = conflict
			s.log.WithFields(logrus.Fields{
				"clause": conflict,
				"level":  s.trail.currentLevel(),
			}).Debug("conflict")
			if s.trail.currentLevel() == 0 {
				s.explainEmpty()
				s.learnConflict()
				s.conflict = nil
				s.status = Unsat
				return s.status
			}
			s.explainUIP()
			learned := s.learnConflict()
			s.backjump(learned)
			s.conflict = nil
			continue
		}
		if lit, c := s.db.findUnit(s.trail); lit != NullLit {
			s.propagate(lit, c)
			continue
		}
		if lit := s.trail.firstUndefined(); lit != NullLit {
			s.decide(lit)
			continue
		}
		s.status = Sat
		s.saveModel()
		return s.status
	}
}

// propagate asserts lit at the current level and records c as its reason.
func (s *Solver) propagate(lit Lit, c *Clause) {
	s.trail.push(lit, false)
	s.reasons.set(lit.Var(), c)
	s.Stats.NbPropagations++
	s.log.WithFields(logrus.Fields{
		"lit":    lit,
		"clause": c,
		"level":  s.trail.currentLevel(),
	}).Debug("propagated")
}

// decide asserts lit at a fresh decision level.
func (s *Solver) decide(lit Lit) {
	s.trail.push(lit, true)
	s.Stats.NbDecisions++
	s.log.WithFields(logrus.Fields{
		"lit":   lit,
		"level": s.trail.currentLevel(),
	}).Debug("decided")
}

// saveModel snapshots the trail as a total assignment. Sat is only
// reached once no variable is left undefined, but an undefined variable
// would default to false anyway.
func (s *Solver) saveModel() {
	s.lastModel = make([]bool, s.nbVars)
	for v := Var(1); int(v) <= s.nbVars; v++ {
		s.lastModel[v-1] = s.trail.valueOf(v) == True
	}
}

// Model returns a slice that associates, to each variable in order, its
// binding. If s's status is not Sat, the method will panic.
func (s *Solver) Model() []bool {
	if s.lastModel == nil {
		panic("cannot call Model() from a non-Sat solver")
	}
	return s.lastModel
}

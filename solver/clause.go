package solver

import (
	"fmt"
	"strings"
)

// A Clause is an ordered list of Lit. Duplicate or opposite literals are
// not checked for: Resolve never adds a duplicate, but it may produce a
// tautology.
type Clause struct {
	lits    []Lit
	learned bool
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// NewLearnedClause returns a new clause marked as learned. The lits are
// copied: learned clauses outlive the transient conflict they come from.
func NewLearnedClause(lits []Lit) *Clause {
	lits2 := make([]Lit, len(lits))
	copy(lits2, lits)
	return &Clause{lits: lits2, learned: true}
}

// Learned returns true iff c was a learned clause.
func (c *Clause) Learned() bool {
	return c.learned
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Empty returns true iff c contains no literal at all, i.e c is the false
// clause.
func (c *Clause) Empty() bool {
	return len(c.lits) == 0
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Contains returns true iff l is one of c's literals.
func (c *Clause) Contains(l Lit) bool {
	for _, lit := range c.lits {
		if lit == l {
			return true
		}
	}
	return false
}

// Invert returns the clause made of the negations of c's literals, in the
// same order.
func (c *Clause) Invert() *Clause {
	lits := make([]Lit, len(c.lits))
	for i, l := range c.lits {
		lits[i] = l.Negation()
	}
	return &Clause{lits: lits}
}

// without returns a copy of c with every occurrence of l removed.
func (c *Clause) without(l Lit) *Clause {
	lits := make([]Lit, 0, len(c.lits))
	for _, lit := range c.lits {
		if lit != l {
			lits = append(lits, lit)
		}
	}
	return &Clause{lits: lits}
}

// Resolve returns the resolvent of c1 and c2 over the given pivot: all
// literals of c1 but the pivot and its negation, followed by all literals
// of c2 but the pivot and its negation that are not already present. The
// order of first appearance is preserved.
// The pivot must appear in one clause and its negation in the other;
// calling Resolve with a pivot absent from either clause breaks the
// solver's invariants, so it panics.
func Resolve(c1, c2 *Clause, pivot Lit) *Clause {
	if !c1.Contains(pivot) && !c1.Contains(pivot.Negation()) {
		panic(fmt.Sprintf("resolve: pivot %s appears in neither polarity in clause %s", pivot, c1))
	}
	if !c2.Contains(pivot) && !c2.Contains(pivot.Negation()) {
		panic(fmt.Sprintf("resolve: pivot %s appears in neither polarity in clause %s", pivot, c2))
	}
	lits := make([]Lit, 0, len(c1.lits)+len(c2.lits))
	for _, l := range c1.lits {
		if l != pivot && l != pivot.Negation() {
			lits = append(lits, l)
		}
	}
	res := &Clause{lits: lits}
	for _, l := range c2.lits {
		if l != pivot && l != pivot.Negation() && !res.Contains(l) {
			res.lits = append(res.lits, l)
		}
	}
	return res
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}

func (c *Clause) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, l := range c.lits {
		b.WriteString(l.String())
		b.WriteByte(' ')
	}
	b.WriteString("]")
	return b.String()
}

package solver

import "fmt"

// A reasonMap records, for each propagated variable currently on the
// trail, the clause that forced it. Decision variables have no entry.
// Entries hold references into the clause database, never copies.
type reasonMap map[Var]*Clause

func (r reasonMap) set(v Var, c *Clause) {
	r[v] = c
}

// get returns the reason for v's propagation. Asking for the reason of a
// variable that was not propagated is a programmer error.
func (r reasonMap) get(v Var) *Clause {
	c, ok := r[v]
	if !ok {
		panic(fmt.Sprintf("reason: no clause recorded for variable %d", v))
	}
	return c
}

// forget drops the entries of all variables whose literals left the trail.
func (r reasonMap) forget(lits []Lit) {
	for _, l := range lits {
		delete(r, l.Var())
	}
}

func (r reasonMap) clear() {
	clear(r)
}

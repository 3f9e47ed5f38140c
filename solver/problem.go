package solver

import "fmt"

// A Problem is a list of clauses & a nb of vars.
type Problem struct {
	NbVars  int       // Total nb of vars
	Clauses []*Clause // List of clauses of the problem
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses))
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}

// ParseSlice parses a slice of slices of DIMACS literals and returns the
// equivalent problem. The argument is supposed to be a well-formed CNF:
// the null literal is not a valid value.
func ParseSlice(cnf [][]int) *Problem {
	var pb Problem
	for _, line := range cnf {
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				panic("null literal in clause")
			}
			lits[j] = Lit(val)
			if v := int(lits[j].Var()); v > pb.NbVars {
				pb.NbVars = v
			}
		}
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
	return &pb
}

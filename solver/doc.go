/*
Package solver gives access to a simple CDCL SAT solver.
Its input can be either a DIMACS CNF stream or a solver.Problem object,
containing the set of clauses to be solved.

No matter the input format, the solver.Solver will solve the problem and
indicate whether the problem is satisfiable or not. In the former case, it
will be able to provide a model, i.e a set of bindings for all variables
that makes the problem true.

# Describing a problem

A problem can be described in two ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the
following content:

	p cnf 6 7
	1 2 3 0
	4 5 6 0
	-1 -4 0
	-2 -5 0
	-3 -6 0
	-1 -3 0
	-4 -6 0

the programmer can create the Problem by doing:

	pb, err := solver.ParseCNF(f)

2. create the equivalent list of list of literals:

	clauses := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{-1, -4},
		{-2, -5},
		{-3, -6},
		{-1, -3},
		{-4, -6},
	}
	pb := solver.ParseSlice(clauses)

# Solving a problem

Once the Problem is created, solving it is as simple as:

	s := solver.New(pb)
	status := s.Solve()

status is then either solver.Sat or solver.Unsat (or solver.Indet, if the
solver was given a conflict budget through MaxConflicts and exhausted it).
If the problem is satisfiable, the model can be retrieved with s.Model():

	if status == solver.Sat {
		m := s.Model() // m[i] is the binding of variable i+1
	}

# How it works

The solver implements conflict-driven clause learning around a single
search loop. At each step, the first falsified clause of the database, if
any, is resolved backward along the propagation reasons to the first
unique implication point; the resulting clause is learned and the trail is
rewound non-chronologically before the search resumes. When no clause is
falsified, the first unit clause in insertion order is propagated; when no
clause is unit, the smallest unassigned variable is decided positively.
This fixed rule priority makes two runs on the same input produce the same
trail and the same verdict.

The clause database is scanned directly to detect conflicting and unit
clauses. This keeps the solver small and its behavior easy to predict; it
is not meant to compete with watched-literal engines on large industrial
instances.
*/
package solver

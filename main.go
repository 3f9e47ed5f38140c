package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crnkovic/resolva/solver"
)

func main() {
	var (
		verbose      bool
		maxConflicts int
	)
	cmd := &cobra.Command{
		Use:          "resolva file.cnf",
		Short:        "resolva decides the satisfiability of DIMACS CNF problems",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose, maxConflicts)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace solver rules and print statistics")
	cmd.Flags().IntVar(&maxConflicts, "max-conflicts", 0, "give up after that many conflicts (0 means no limit)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, verbose bool, maxConflicts int) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	pb, err := solver.ParseCNF(f)
	if err != nil {
		return errors.Wrapf(err, "could not parse %q", path)
	}
	s := solver.New(pb)
	s.MaxConflicts = maxConflicts
	if verbose {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		s.SetLogger(log)
	}
	status := s.Solve()
	switch status {
	case solver.Sat:
		fmt.Println("SAT")
		fmt.Println(formatModel(s.Model()))
	case solver.Unsat:
		fmt.Println("UNSAT")
	default:
		fmt.Println("INDETERMINATE")
	}
	if verbose {
		fmt.Printf("c nb conflicts: %d\nc nb decisions: %d\nc nb propagations: %d\n",
			s.Stats.NbConflicts, s.Stats.NbDecisions, s.Stats.NbPropagations)
		fmt.Printf("c nb learned: %d\nc nb restarts: %d\n", s.Stats.NbLearned, s.Stats.NbRestarts)
	}
	return nil
}

// formatModel renders a total assignment as "[ p1 ~p2 p3 ]".
func formatModel(model []bool) string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, val := range model {
		if !val {
			b.WriteByte('~')
		}
		fmt.Fprintf(&b, "p%d ", i+1)
	}
	b.WriteString("]")
	return b.String()
}

package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInput is the error all DIMACS parsing failures wrap: malformed
// header, non-integer token where a literal was expected, literal out of
// range, or more clauses than the header declared.
var ErrInvalidInput = errors.New("invalid input")

// ParseCNF parses a DIMACS CNF stream and returns the corresponding
// Problem. Lines starting with 'c' (possibly after leading whitespace) are
// comments; the first meaningful line must be the "p cnf <nbVars>
// <nbClauses>" header. A clause is a sequence of literals terminated by 0
// and may span several lines.
func ParseCNF(f io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(f)
	nbVars, nbClauses, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}
	pb := &Problem{
		NbVars:  nbVars,
		Clauses: make([]*Clause, 0, nbClauses),
	}
	var lits []Lit
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		for _, field := range strings.Fields(line) {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidInput, "literal %q is not an integer", field)
			}
			if val == 0 {
				if len(pb.Clauses) == nbClauses {
					return nil, errors.Wrapf(ErrInvalidInput, "more than %d declared clauses", nbClauses)
				}
				pb.Clauses = append(pb.Clauses, NewClause(lits))
				lits = nil
				continue
			}
			if val > nbVars || -val > nbVars {
				return nil, errors.Wrapf(ErrInvalidInput, "literal %d out of range for %d vars", val, nbVars)
			}
			lits = append(lits, Lit(val))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read CNF stream")
	}
	if len(lits) != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "unfinished clause at end of input")
	}
	return pb, nil
}

// parseHeader skips comments and blank lines, then reads the problem line.
func parseHeader(scanner *bufio.Scanner) (nbVars, nbClauses int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
			return 0, 0, errors.Wrapf(ErrInvalidInput, "invalid header %q", line)
		}
		nbVars, err = strconv.Atoi(fields[2])
		if err != nil || nbVars < 0 {
			return 0, 0, errors.Wrapf(ErrInvalidInput, "nbVars %q is not a valid count", fields[2])
		}
		nbClauses, err = strconv.Atoi(fields[3])
		if err != nil || nbClauses < 0 {
			return 0, 0, errors.Wrapf(ErrInvalidInput, "nbClauses %q is not a valid count", fields[3])
		}
		return nbVars, nbClauses, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, errors.Wrap(err, "could not read CNF header")
	}
	return 0, 0, errors.Wrapf(ErrInvalidInput, "no header found")
}

// Package r1cs represents rank-1 constraint systems over F_r: a list of
// sparse rows (A, B, C) such that <A,w>*<B,w> = <C,w> for every row,
// where w is the witness vector with w[0] fixed to 1.
package r1cs

import (
	"fmt"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark"
)

// Term is a single (coefficient, variable index) pair in a sparse linear
// combination.
type Term struct {
	Index       int
	Coefficient *field.Fr
}

// LinearCombination is a sparse sum over witness indices:
// sum(Coefficient_i * w[Index_i]).
type LinearCombination []Term

// Eval evaluates the combination against a witness vector.
func (lc LinearCombination) Eval(w []*field.Fr) *field.Fr {
	acc := field.FrZero()
	for _, t := range lc {
		acc = acc.Add(t.Coefficient.Mul(w[t.Index])).(*field.Fr)
	}
	return acc
}

// Constraint is a single R1CS row <A,w>*<B,w> = <C,w>.
type Constraint struct {
	A, B, C LinearCombination
}

// System is an ordered list of constraints over a fixed-size witness,
// with variable 0 reserved for the constant 1 and indices
// 1..NumPublic reserved for public inputs.
type System struct {
	Constraints []Constraint
	NumVars     int
	NumPublic   int
	// VarNames maps variable index to its source name, for named
	// public/private variables the parser introduced. Indices with no
	// entry are anonymous (intermediate products).
	VarNames map[int]string
}

func NewSystem(numPublic int) *System {
	return &System{NumVars: 1, NumPublic: numPublic, VarNames: map[int]string{0: "one"}}
}

// AllocVar reserves a fresh witness index for name (which may be empty
// for an anonymous intermediate variable) and returns it.
func (s *System) AllocVar(name string) int {
	idx := s.NumVars
	s.NumVars++
	if name != "" {
		s.VarNames[idx] = name
	}
	return idx
}

// AddConstraint appends a row.
func (s *System) AddConstraint(a, b, c LinearCombination) {
	s.Constraints = append(s.Constraints, Constraint{A: a, B: b, C: c})
}

// CheckSatisfied verifies every row against a full witness vector
// (including w[0]=1), returning a row index alongside a mismatch.
func (s *System) CheckSatisfied(w []*field.Fr) error {
	if len(w) != s.NumVars {
		return fmt.Errorf("r1cs: witness size %d does not match variable count %d", len(w), s.NumVars)
	}
	if !w[0].IsOne() {
		return fmt.Errorf("r1cs: witness[0] must be 1")
	}
	for i, c := range s.Constraints {
		lhs := c.A.Eval(w).Mul(c.B.Eval(w)).(*field.Fr)
		rhs := c.C.Eval(w)
		if !lhs.Equal(rhs) {
			return fmt.Errorf("r1cs: constraint %d unsatisfied (%w): %s != %s", i, snark.ErrUnsatisfiedConstraint, lhs, rhs)
		}
	}
	return nil
}

// ColumnAt returns, for witness index varIdx, the coefficient it
// contributes to constraint row's A/B/C linear combination (0 if absent).
// QAP construction needs the per-variable column across all rows.
func ColumnAt(lc LinearCombination, varIdx int) *field.Fr {
	for _, t := range lc {
		if t.Index == varIdx {
			return t.Coefficient
		}
	}
	return field.FrZero()
}

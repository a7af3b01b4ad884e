package qap

import (
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark"
	"github.com/wyf-zk/zksnark-core/snark/r1cs"
)

// QAP is the Quadratic Arithmetic Program equivalent of an R1CS: for
// every witness index i there are polynomials A_i, B_i, C_i such that,
// for a satisfying witness w,
//
//	(sum_i w_i*A_i(x)) * (sum_i w_i*B_i(x)) - (sum_i w_i*C_i(x))
//
// is divisible by the target polynomial T(x) = prod_j (x - point_j),
// one point per R1CS row.
type QAP struct {
	A, B, C   []Polynomial // indexed by witness index
	T         Polynomial
	Points    []*field.Fr // interpolation point per constraint row
	NumVars   int
	NumPublic int
}

// Build interpolates A_i, B_i, C_i through the rows of sys at the fixed
// points 1..NumConstraints (small integers are fine: the points only need
// to be distinct, per the construction in the original Pinocchio QAP code
// this package is grounded on).
func Build(sys *r1cs.System) *QAP {
	m := len(sys.Constraints)
	points := make([]*field.Fr, m)
	for j := 0; j < m; j++ {
		points[j] = field.FrFromUint64(uint64(j + 1))
	}

	q := &QAP{
		A:         make([]Polynomial, sys.NumVars),
		B:         make([]Polynomial, sys.NumVars),
		C:         make([]Polynomial, sys.NumVars),
		Points:    points,
		NumVars:   sys.NumVars,
		NumPublic: sys.NumPublic,
	}

	for i := 0; i < sys.NumVars; i++ {
		aVals := make([]*field.Fr, m)
		bVals := make([]*field.Fr, m)
		cVals := make([]*field.Fr, m)
		for j, cons := range sys.Constraints {
			aVals[j] = r1cs.ColumnAt(cons.A, i)
			bVals[j] = r1cs.ColumnAt(cons.B, i)
			cVals[j] = r1cs.ColumnAt(cons.C, i)
		}
		q.A[i] = interpolate(points, aVals)
		q.B[i] = interpolate(points, bVals)
		q.C[i] = interpolate(points, cVals)
	}

	q.T = target(points)
	return q
}

// target builds prod_j (x - points[j]).
func target(points []*field.Fr) Polynomial {
	t := FromCoeffs(field.FrOne())
	for _, p := range points {
		factor := FromCoeffs(p.Neg().(*field.Fr), field.FrOne())
		t = t.Mul(factor)
	}
	return t
}

// interpolate returns the unique lowest-degree polynomial passing
// through (points[j], values[j]) for every j, via Lagrange interpolation.
func interpolate(points, values []*field.Fr) Polynomial {
	result := Zero()
	for j := range points {
		if values[j].IsZero() {
			continue
		}
		basis := lagrangeBasis(points, j)
		result = result.Add(basis.Scale(values[j]))
	}
	return result
}

// lagrangeBasis builds L_j(x) = prod_{k != j} (x - points[k]) / (points[j] - points[k]).
func lagrangeBasis(points []*field.Fr, j int) Polynomial {
	basis := FromCoeffs(field.FrOne())
	denom := field.FrOne()
	for k, pk := range points {
		if k == j {
			continue
		}
		basis = basis.Mul(FromCoeffs(pk.Neg().(*field.Fr), field.FrOne()))
		denom = denom.Mul(points[j].Sub(pk)).(*field.Fr)
	}
	denomInv, err := denom.Inverse()
	if err != nil {
		// points are pairwise distinct by construction, so the
		// denominator is never zero.
		panic(err)
	}
	return basis.Scale(denomInv.(*field.Fr))
}

// witnessPoly combines per-index polynomials with a witness assignment:
// sum_i w_i * polys[i].
func witnessPoly(polys []Polynomial, w []*field.Fr) Polynomial {
	acc := Zero()
	for i, p := range polys {
		if w[i].IsZero() {
			continue
		}
		acc = acc.Add(p.Scale(w[i]))
	}
	return acc
}

// Evaluate combines A, B, C against a witness and returns (A(x), B(x), C(x))
// as the three witness-weighted polynomials.
func (q *QAP) Evaluate(w []*field.Fr) (Polynomial, Polynomial, Polynomial) {
	return witnessPoly(q.A, w), witnessPoly(q.B, w), witnessPoly(q.C, w)
}

// H computes the quotient polynomial h(x) = (A(x)*B(x) - C(x)) / T(x) for
// a satisfying witness, failing with snark.ErrUnsatisfiedConstraint if the
// division has a nonzero remainder.
func (q *QAP) H(w []*field.Fr) (Polynomial, error) {
	a, b, c := q.Evaluate(w)
	p := a.Mul(b).Sub(c)
	quotient, remainder, err := p.DivMod(q.T)
	if err != nil {
		return nil, err
	}
	if remainder.Degree() >= 0 {
		return nil, snark.ErrUnsatisfiedConstraint
	}
	return quotient, nil
}

// CheckSatisfied reports whether the full witness w satisfies q, i.e.
// whether A(x)*B(x) - C(x) is divisible by T(x).
func (q *QAP) CheckSatisfied(w []*field.Fr) error {
	_, err := q.H(w)
	return err
}

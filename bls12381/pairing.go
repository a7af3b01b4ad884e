package bls12381

// The optimal ate pairing e: G1 x G2 -> GT. The Miller loop iterates over
// the bits of the BLS parameter X; since X is negative the accumulated
// line product is conjugated at the end to account for the sign. Final
// exponentiation splits into an easy part (Frobenius and inversion) and
// a hard part computed as one direct exponentiation by (q^4-q^2+1)/r;
// the hard part does not use the cyclotomic-subgroup chain driven by |X|.

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/tower"
)

// lineAdd computes the sparse Fq12 line function through r and the
// affine point (qx,qy), evaluated at the affine G1 point (px,py), and
// returns the updated accumulator point r+Q.
func lineAdd(r *G2, qx, qy *tower.Fq2, px, py *field.Fq) (*tower.Fq12, *G2) {
	if r.IsInfinity() {
		return tower.Fq12One(), G2FromAffine(qx, qy)
	}
	rx, ry, err := r.AffineFq2()
	if err != nil {
		return tower.Fq12One(), G2Infinity()
	}
	if rx.Equal(qx) && ry.Equal(qy) {
		return lineDouble(r, px, py)
	}

	num := qy.Sub(ry).(*tower.Fq2)
	den := qx.Sub(rx).(*tower.Fq2)
	if den.IsZero() {
		return tower.Fq12One(), G2Infinity()
	}
	denInv, _ := den.Inverse()
	lambda := num.Mul(denInv).(*tower.Fq2)

	ell0 := lambda.Mul(rx).(*tower.Fq2).Sub(ry).(*tower.Fq2)
	ell1 := lambda.MulByFq(px).Neg().(*tower.Fq2)

	f := &tower.Fq12{
		C0: tower.NewFq6(ell0, ell1, tower.Fq2Zero()),
		C1: tower.NewFq6(tower.Fq2Zero(), tower.NewFq2(py, field.FqZero()), tower.Fq2Zero()),
	}
	return f, r.Add(G2FromAffine(qx, qy))
}

// lineDouble computes the tangent-line Fq12 evaluation at (px,py) and
// returns the doubled accumulator 2R.
func lineDouble(r *G2, px, py *field.Fq) (*tower.Fq12, *G2) {
	if r.IsInfinity() {
		return tower.Fq12One(), G2Infinity()
	}
	rx, ry, err := r.AffineFq2()
	if err != nil || ry.IsZero() {
		return tower.Fq12One(), G2Infinity()
	}

	rxSq := rx.Square().(*tower.Fq2)
	three := tower.NewFq2(field.FqFromUint64(3), field.FqZero())
	two := tower.NewFq2(field.FqFromUint64(2), field.FqZero())
	num := three.Mul(rxSq).(*tower.Fq2)
	den := two.Mul(ry).(*tower.Fq2)
	denInv, _ := den.Inverse()
	lambda := num.Mul(denInv).(*tower.Fq2)

	ell0 := lambda.Mul(rx).(*tower.Fq2).Sub(ry).(*tower.Fq2)
	ell1 := lambda.MulByFq(px).Neg().(*tower.Fq2)

	f := &tower.Fq12{
		C0: tower.NewFq6(ell0, ell1, tower.Fq2Zero()),
		C1: tower.NewFq6(tower.Fq2Zero(), tower.NewFq2(py, field.FqZero()), tower.Fq2Zero()),
	}
	return f, r.Double()
}

// MillerLoop runs Miller's algorithm on (p, q), producing the
// not-yet-exponentiated Fq12 accumulator.
func MillerLoop(p *G1, q *G2) *tower.Fq12 {
	if p.IsInfinity() || q.IsInfinity() {
		return tower.Fq12One()
	}
	px, py, err := p.AffineFq()
	if err != nil {
		return tower.Fq12One()
	}
	qx, qy, err := q.AffineFq2()
	if err != nil {
		return tower.Fq12One()
	}

	f := tower.Fq12One()
	r := G2FromAffine(qx, qy)

	for i := X.BitLen() - 2; i >= 0; i-- {
		var l *tower.Fq12
		l, r = lineDouble(r, px, py)
		f = f.Square().(*tower.Fq12)
		f = f.Mul(l).(*tower.Fq12)

		if X.Bit(i) == 1 {
			l, r = lineAdd(r, qx, qy, px, py)
			f = f.Mul(l).(*tower.Fq12)
		}
	}

	// X is negative: conjugate to account for the sign.
	return f.Conjugate()
}

// FinalExponentiation raises f to (q^12-1)/r, split into the easy part
// (Frobenius and inversion) and the hard part (direct exponentiation by
// (q^4-q^2+1)/r, legible over fast but intricate cyclotomic-subgroup
// exponentiation by |X|).
func FinalExponentiation(f *tower.Fq12) *tower.Fq12 {
	fInv, err := f.Inverse()
	if err != nil {
		return tower.Fq12One()
	}
	f1 := f.Conjugate().Mul(fInv).(*tower.Fq12)

	q2 := new(big.Int).Mul(field.FqModulus, field.FqModulus)
	f1p2 := f1.Pow(q2)
	f2 := f1p2.Mul(f1).(*tower.Fq12)

	p2 := new(big.Int).Mul(field.FqModulus, field.FqModulus)
	p4 := new(big.Int).Mul(p2, p2)
	hardExp := new(big.Int).Sub(p4, p2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, field.FrModulus)

	return f2.Pow(hardExp)
}

// Pair computes e(P, Q) = FinalExponentiation(MillerLoop(P, Q)).
func Pair(p *G1, q *G2) *tower.Fq12 {
	return FinalExponentiation(MillerLoop(p, q))
}

// MultiPairingCheck tests product(e(P_i,Q_i)) == 1 by multiplying the
// Miller loop outputs and running a single final exponentiation, instead
// of computing and comparing the individual pairings.
func MultiPairingCheck(ps []*G1, qs []*G2) bool {
	f := tower.Fq12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		f = f.Mul(MillerLoop(ps[i], qs[i])).(*tower.Fq12)
	}
	return FinalExponentiation(f).IsOne()
}

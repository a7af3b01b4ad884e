package bls12381

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/curve"
	"github.com/wyf-zk/zksnark-core/field"
)

// G1Curve is the curve y^2 = x^3 + 4 over F_q that G1 points live on.
var G1Curve = curve.New(field.FqField, g1B)

// G1 is a point on the BLS12-381 G1 curve.
type G1 struct {
	*curve.Point
}

// G1Generator returns the fixed generator of G1.
func G1Generator() *G1 {
	return &G1{G1Curve.FromAffine(field.NewFq(g1GenX), field.NewFq(g1GenY))}
}

// G1Infinity returns the identity of G1.
func G1Infinity() *G1 { return &G1{G1Curve.Infinity()} }

// G1FromAffine wraps affine F_q coordinates as a G1 point without any
// curve-membership check; use IsOnCurve to validate untrusted input.
func G1FromAffine(x, y *field.Fq) *G1 {
	return &G1{G1Curve.FromAffine(x, y)}
}

func (p *G1) Add(q *G1) *G1    { return &G1{p.Point.Add(q.Point)} }
func (p *G1) Double() *G1      { return &G1{p.Point.Double()} }
func (p *G1) Neg() *G1         { return &G1{p.Point.Neg()} }
func (p *G1) Equal(q *G1) bool { return p.Point.Equal(q.Point) }

func (p *G1) ScalarMul(k *big.Int) *G1 { return &G1{p.Point.ScalarMul(k)} }

// ScalarMulFr multiplies by a scalar field element, reducing mod r first.
func (p *G1) ScalarMulFr(k *field.Fr) *G1 { return p.ScalarMul(k.BigInt()) }

// AffineFq returns the affine coordinates as Fq elements.
func (p *G1) AffineFq() (*field.Fq, *field.Fq, error) {
	x, y, err := p.Affine()
	if err != nil {
		return nil, nil, err
	}
	return x.(*field.Fq), y.(*field.Fq), nil
}

// IsOnCurve checks that p's affine coordinates satisfy y^2=x^3+4.
func (p *G1) IsOnCurve() bool {
	x, y, err := p.AffineFq()
	if err != nil {
		return false
	}
	return G1Curve.IsOnCurve(x, y)
}

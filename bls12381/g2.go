package bls12381

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/curve"
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/tower"
)

// G2Curve is the twist curve y^2 = x^3 + 4(1+u) over F_q2.
var G2Curve = curve.New(tower.Fq2Field, g2B)

// G2 is a point on the BLS12-381 G2 twist curve.
type G2 struct {
	*curve.Point
}

func G2Generator() *G2 {
	x := tower.NewFq2(field.NewFq(g2GenXc0), field.NewFq(g2GenXc1))
	y := tower.NewFq2(field.NewFq(g2GenYc0), field.NewFq(g2GenYc1))
	return &G2{G2Curve.FromAffine(x, y)}
}

func G2Infinity() *G2 { return &G2{G2Curve.Infinity()} }

func G2FromAffine(x, y *tower.Fq2) *G2 {
	return &G2{G2Curve.FromAffine(x, y)}
}

func (p *G2) Add(q *G2) *G2    { return &G2{p.Point.Add(q.Point)} }
func (p *G2) Double() *G2      { return &G2{p.Point.Double()} }
func (p *G2) Neg() *G2         { return &G2{p.Point.Neg()} }
func (p *G2) Equal(q *G2) bool { return p.Point.Equal(q.Point) }

func (p *G2) ScalarMul(k *big.Int) *G2 { return &G2{p.Point.ScalarMul(k)} }

func (p *G2) ScalarMulFr(k *field.Fr) *G2 { return p.ScalarMul(k.BigInt()) }

func (p *G2) AffineFq2() (*tower.Fq2, *tower.Fq2, error) {
	x, y, err := p.Affine()
	if err != nil {
		return nil, nil, err
	}
	return x.(*tower.Fq2), y.(*tower.Fq2), nil
}

func (p *G2) IsOnCurve() bool {
	x, y, err := p.AffineFq2()
	if err != nil {
		return false
	}
	return G2Curve.IsOnCurve(x, y)
}

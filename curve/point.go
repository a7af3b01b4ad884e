// Package curve implements a short Weierstrass curve y^2 = x^3 + b in
// Jacobian coordinates, generic over the coordinate field. The same code
// serves BLS12-381 G1 (coordinate field F_q) and G2 (coordinate field
// F_q2), which is what breaks the cyclic dependency between the curve
// layer and the two coordinate fields: curve imports only the field.Elem
// and field.Field interfaces, never a concrete field package.
package curve

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
)

// Curve is y^2 = x^3 + B over a coordinate field.
type Curve struct {
	Field field.Field
	B     field.Elem
}

// Point is a curve point in Jacobian coordinates (X, Y, Z), representing
// the affine point (X/Z^2, Y/Z^3). Z = 0 is the point at infinity.
type Point struct {
	X, Y, Z field.Elem
	curve   *Curve
}

func New(f field.Field, b field.Elem) *Curve {
	return &Curve{Field: f, B: b}
}

// Infinity returns the identity element.
func (c *Curve) Infinity() *Point {
	return &Point{X: c.Field.One(), Y: c.Field.One(), Z: c.Field.Zero(), curve: c}
}

// FromAffine builds a Jacobian point from affine coordinates. Passing two
// zero coordinates returns infinity, matching the all-zero encoding
// convention used elsewhere in the toolkit.
func (c *Curve) FromAffine(x, y field.Elem) *Point {
	if x.IsZero() && y.IsZero() {
		return c.Infinity()
	}
	return &Point{X: x, Y: y, Z: c.Field.One(), curve: c}
}

func (p *Point) IsInfinity() bool { return p.Z.IsZero() }

// Affine converts back to affine coordinates, returning (0,0) for
// infinity. It is the only operation in this file that needs a field
// inversion.
func (p *Point) Affine() (field.Elem, field.Elem, error) {
	if p.IsInfinity() {
		return p.curve.Field.Zero(), p.curve.Field.Zero(), nil
	}
	zInv, err := p.Z.Inverse()
	if err != nil {
		return nil, nil, err
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.X.Mul(zInv2), p.Y.Mul(zInv3), nil
}

// IsOnCurve checks y^2 = x^3 + b for affine coordinates. (0,0) is treated
// as the identity and always accepted.
func (c *Curve) IsOnCurve(x, y field.Elem) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(c.B)
	return lhs.Equal(rhs)
}

// Neg returns -P: (x, -y) in affine, with infinity fixed.
func (p *Point) Neg() *Point {
	if p.IsInfinity() {
		return p.curve.Infinity()
	}
	return &Point{X: p.X, Y: p.Y.Neg(), Z: p.Z, curve: p.curve}
}

func (p *Point) Equal(q *Point) bool {
	px, py, err1 := p.Affine()
	qx, qy, err2 := q.Affine()
	if err1 != nil || err2 != nil {
		return false
	}
	return px.Equal(qx) && py.Equal(qy)
}

// Double doubles a point using the a=0 Jacobian formula (no field
// inversion): A = X^2, B = Y^2, C = B^2, D = 2*((X+B)^2-A-C),
// E = 3A, X' = E^2-2D, Y' = E*(D-X')-8C, Z' = 2*Y*Z.
func (p *Point) Double() *Point {
	if p.IsInfinity() {
		return p.curve.Infinity()
	}
	a := p.X.Square()
	b := p.Y.Square()
	c := b.Square()

	d := p.X.Add(b).Square().Sub(a).Sub(c)
	d = d.Add(d)

	e := a.Add(a).Add(a)

	x3 := e.Square().Sub(d).Sub(d)

	twoC := c.Add(c)
	fourC := twoC.Add(twoC)
	eightC := fourC.Add(fourC)
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)

	z3 := p.Y.Add(p.Y).Mul(p.Z)

	return &Point{X: x3, Y: y3, Z: z3, curve: p.curve}
}

// Add adds two Jacobian points by the general Jacobian addition formula,
// falling back to Double when the points coincide and to the infinity
// short-circuits when either operand is the identity.
func (p *Point) Add(q *Point) *Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1sq := p.Z.Square()
	z2sq := q.Z.Square()
	u1 := p.X.Mul(z2sq)
	u2 := q.X.Mul(z1sq)
	s1 := p.Y.Mul(q.Z).Mul(z2sq)
	s2 := q.Y.Mul(p.Z).Mul(z1sq)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return p.curve.Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Add(v))
	s1j := s1.Mul(j)
	y3 := r.Mul(v.Sub(x3)).Sub(s1j.Add(s1j))
	z3 := p.Z.Add(q.Z).Square().Sub(z1sq).Sub(z2sq).Mul(h)

	return &Point{X: x3, Y: y3, Z: z3, curve: p.curve}
}

// ScalarMul computes [k]P by double-and-add over the big-endian bits of
// k, excluding the leading 1, per the double-and-add convention; k=0 or
// an infinite base returns infinity directly rather than entering the
// loop with a zero-bit scan.
func (p *Point) ScalarMul(k *big.Int) *Point {
	if k.Sign() == 0 || p.IsInfinity() {
		return p.curve.Infinity()
	}
	if k.Sign() < 0 {
		return p.Neg().ScalarMul(new(big.Int).Neg(k))
	}

	result := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

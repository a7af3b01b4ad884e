// Package tower implements the BLS12-381 extension tower
// F_q2 = F_q[u]/(u^2+1), F_q6 = F_q2[v]/(v^3-xi), F_q12 = F_q6[w]/(w^2-v),
// with xi = 1+u. F_q2 backs G2 point coordinates; F_q12 is the target
// group of the pairing.
package tower

import (
	"fmt"

	"github.com/wyf-zk/zksnark-core/field"
)

// Fq2 is an element c0 + c1*u of F_q[u]/(u^2+1).
type Fq2 struct {
	C0, C1 *field.Fq
}

func NewFq2(c0, c1 *field.Fq) *Fq2 { return &Fq2{C0: c0, C1: c1} }

func Fq2Zero() *Fq2 { return &Fq2{C0: field.FqZero(), C1: field.FqZero()} }

func Fq2One() *Fq2 { return &Fq2{C0: field.FqOne(), C1: field.FqZero()} }

func (e *Fq2) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

func (e *Fq2) Equal(other field.Elem) bool {
	o, ok := other.(*Fq2)
	return ok && e.C0.Equal(o.C0) && e.C1.Equal(o.C1)
}

func (e *Fq2) Add(other field.Elem) field.Elem {
	o := other.(*Fq2)
	return &Fq2{C0: e.C0.Add(o.C0).(*field.Fq), C1: e.C1.Add(o.C1).(*field.Fq)}
}

func (e *Fq2) Sub(other field.Elem) field.Elem {
	o := other.(*Fq2)
	return &Fq2{C0: e.C0.Sub(o.C0).(*field.Fq), C1: e.C1.Sub(o.C1).(*field.Fq)}
}

// Mul computes (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u,
// using the Karatsuba cross-term trick to save one base-field
// multiplication.
func (e *Fq2) Mul(other field.Elem) field.Elem {
	o := other.(*Fq2)
	v0 := e.C0.Mul(o.C0).(*field.Fq)
	v1 := e.C1.Mul(o.C1).(*field.Fq)
	c0 := v0.Sub(v1).(*field.Fq)
	c1 := e.C0.Add(e.C1).(*field.Fq).Mul(o.C0.Add(o.C1)).(*field.Fq).Sub(v0.Add(v1)).(*field.Fq)
	return &Fq2{C0: c0, C1: c1}
}

func (e *Fq2) Square() field.Elem {
	ab := e.C0.Mul(e.C1).(*field.Fq)
	c0 := e.C0.Add(e.C1).(*field.Fq).Mul(e.C0.Sub(e.C1)).(*field.Fq)
	c1 := ab.Add(ab).(*field.Fq)
	return &Fq2{C0: c0, C1: c1}
}

func (e *Fq2) Neg() field.Elem {
	return &Fq2{C0: e.C0.Neg().(*field.Fq), C1: e.C1.Neg().(*field.Fq)}
}

// Conjugate returns c0 - c1*u, the image of e under the nontrivial
// automorphism of F_q2 over F_q (equivalently, the Frobenius endomorphism
// x -> x^q restricted to F_q2).
func (e *Fq2) Conjugate() *Fq2 {
	return &Fq2{C0: e.C0, C1: e.C1.Neg().(*field.Fq)}
}

// Inverse computes (a+bu)^-1 = (a-bu) / (a^2+b^2).
func (e *Fq2) Inverse() (field.Elem, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("%w: inverse of zero in Fq2", field.ErrDomain)
	}
	norm := e.C0.Square().(*field.Fq).Add(e.C1.Square().(*field.Fq)).(*field.Fq)
	normInv, err := norm.Inverse()
	if err != nil {
		return nil, err
	}
	ni := normInv.(*field.Fq)
	return &Fq2{C0: e.C0.Mul(ni).(*field.Fq), C1: e.C1.Neg().(*field.Fq).Mul(ni).(*field.Fq)}, nil
}

// MulByNonResidue multiplies e by xi = 1+u, the non-residue used to build
// F_q6 = F_q2[v]/(v^3-xi).
func (e *Fq2) MulByNonResidue() *Fq2 {
	// (a+bu)(1+u) = (a-b) + (a+b)u
	return &Fq2{
		C0: e.C0.Sub(e.C1).(*field.Fq),
		C1: e.C0.Add(e.C1).(*field.Fq),
	}
}

// MulByFq multiplies e by a base-field scalar.
func (e *Fq2) MulByFq(s *field.Fq) *Fq2 {
	return &Fq2{C0: e.C0.Mul(s).(*field.Fq), C1: e.C1.Mul(s).(*field.Fq)}
}

// Frobenius applies x -> x^q, which on F_q2 is exactly conjugation.
func (e *Fq2) Frobenius() *Fq2 { return e.Conjugate() }

// Sqrt returns a square root of e, following the same norm-based
// construction the teacher's flat Fp2 implementation uses: for
// p = 3 mod 4, write a = c0+c1 u, candidate x0 = (c0 +/- sqrt(norm))/2,
// then x1 = c1/(2 x0^{1/2}).
func (e *Fq2) Sqrt() (*Fq2, bool) {
	if e.IsZero() {
		return Fq2Zero(), true
	}
	norm := e.C0.Square().(*field.Fq).Add(e.C1.Square().(*field.Fq)).(*field.Fq)
	sqrtNorm, ok := norm.Sqrt()
	if !ok {
		return nil, false
	}
	two := field.FqFromUint64(2)
	twoInv, _ := two.Inverse()
	for _, sign := range []int{1, -1} {
		var shifted *field.Fq
		if sign == 1 {
			shifted = e.C0.Add(sqrtNorm).(*field.Fq)
		} else {
			shifted = e.C0.Sub(sqrtNorm).(*field.Fq)
		}
		x0cand := shifted.Mul(twoInv).(*field.Fq)
		x0, ok := x0cand.Sqrt()
		if !ok {
			continue
		}
		x0dbl := x0.Add(x0).(*field.Fq)
		x0dblInv, err := x0dbl.Inverse()
		if err != nil {
			continue
		}
		x1 := e.C1.Mul(x0dblInv).(*field.Fq)
		cand := &Fq2{C0: x0, C1: x1}
		if cand.Square().(*Fq2).Equal(e) {
			return cand, true
		}
	}
	return nil, false
}

// Bytes encodes e as 96 bytes: C1 (48 bytes) followed by C0 (48 bytes),
// matching the c1||c0 ordering the BLS signature serialization draft
// uses for F_q2.
func (e *Fq2) Bytes() [96]byte {
	var out [96]byte
	c1 := e.C1.Bytes()
	c0 := e.C0.Bytes()
	copy(out[:48], c1[:])
	copy(out[48:], c0[:])
	return out
}

func Fq2FromBytes(b []byte) (*Fq2, error) {
	if len(b) != 96 {
		return nil, fmt.Errorf("%w: Fq2 encoding must be 96 bytes, got %d", field.ErrDomain, len(b))
	}
	c1, err := field.FqFromBytes(b[:48])
	if err != nil {
		return nil, err
	}
	c0, err := field.FqFromBytes(b[48:])
	if err != nil {
		return nil, err
	}
	return &Fq2{C0: c0, C1: c1}, nil
}

// fq2Field adapts Fq2 to field.Field.
type fq2Field struct{}

func (fq2Field) Zero() field.Elem { return Fq2Zero() }
func (fq2Field) One() field.Elem  { return Fq2One() }

// Fq2Field is the Field factory curve.Curve uses for G2.
var Fq2Field field.Field = fq2Field{}

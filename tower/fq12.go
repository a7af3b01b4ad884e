package tower

import (
	"fmt"
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
)

// Fq12 is an element c0 + c1*w of F_q6[w]/(w^2 - v).
type Fq12 struct {
	C0, C1 *Fq6
}

func NewFq12(c0, c1 *Fq6) *Fq12 { return &Fq12{C0: c0, C1: c1} }

func Fq12Zero() *Fq12 { return &Fq12{C0: Fq6Zero(), C1: Fq6Zero()} }

func Fq12One() *Fq12 { return &Fq12{C0: Fq6One(), C1: Fq6Zero()} }

func (a *Fq12) IsZero() bool { return a.C0.IsZero() && a.C1.IsZero() }

func (a *Fq12) IsOne() bool {
	return a.C0.Equal(Fq6One()) && a.C1.IsZero()
}

func (a *Fq12) Equal(other field.Elem) bool {
	b, ok := other.(*Fq12)
	return ok && a.C0.Equal(b.C0) && a.C1.Equal(b.C1)
}

func (a *Fq12) Add(other field.Elem) field.Elem {
	b := other.(*Fq12)
	return &Fq12{C0: a.C0.Add(b.C0).(*Fq6), C1: a.C1.Add(b.C1).(*Fq6)}
}

func (a *Fq12) Sub(other field.Elem) field.Elem {
	b := other.(*Fq12)
	return &Fq12{C0: a.C0.Sub(b.C0).(*Fq6), C1: a.C1.Sub(b.C1).(*Fq6)}
}

func (a *Fq12) Neg() field.Elem {
	return &Fq12{C0: a.C0.Neg().(*Fq6), C1: a.C1.Neg().(*Fq6)}
}

func (a *Fq12) Mul(other field.Elem) field.Elem {
	b := other.(*Fq12)
	t0 := a.C0.Mul(b.C0).(*Fq6)
	t1 := a.C1.Mul(b.C1).(*Fq6)

	c0 := t0.Add(t1.MulByV()).(*Fq6)
	c1 := a.C0.Add(a.C1).(*Fq6).Mul(b.C0.Add(b.C1)).(*Fq6).Sub(t0).(*Fq6).Sub(t1).(*Fq6)

	return &Fq12{C0: c0, C1: c1}
}

func (a *Fq12) Square() field.Elem {
	ab := a.C0.Mul(a.C1).(*Fq6)
	c0 := a.C0.Add(a.C1).(*Fq6).Mul(a.C0.Add(a.C1.MulByV())).(*Fq6).Sub(ab.Add(ab.MulByV())).(*Fq6)
	c1 := ab.Add(ab).(*Fq6)
	return &Fq12{C0: c0, C1: c1}
}

// Inverse computes (a+bw)^-1 = (a^2 - v b^2)^-1 (a, -b).
func (a *Fq12) Inverse() (field.Elem, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("%w: inverse of zero in Fq12", field.ErrDomain)
	}
	t, err := a.C0.Square().(*Fq6).Sub(a.C1.Square().(*Fq6).MulByV()).(*Fq6).Inverse()
	if err != nil {
		return nil, err
	}
	ti := t.(*Fq6)
	return &Fq12{C0: a.C0.Mul(ti).(*Fq6), C1: a.C1.Neg().(*Fq6).Mul(ti).(*Fq6)}, nil
}

// Conjugate returns the image of a under x -> x^(q^6): (c0, -c1). For a
// unitary element (such as the output of the pairing's easy part) this
// equals a^-1.
func (a *Fq12) Conjugate() *Fq12 {
	return &Fq12{C0: a.C0, C1: a.C1.Neg().(*Fq6)}
}

// Pow raises a to the e-th power by square-and-multiply. This backs both
// scalar exponentiation of GT elements and the Frobenius endomorphism
// (Frobenius(a) = a^q, computed by exponentiation rather than a
// precomputed constant table -- exact and unambiguous, at the cost of
// speed that a from-scratch pairing library does not need to optimize).
func (a *Fq12) Pow(e *big.Int) *Fq12 {
	if e.Sign() == 0 {
		return Fq12One()
	}
	if e.Sign() < 0 {
		inv, err := a.Inverse()
		if err != nil {
			return Fq12One()
		}
		return inv.(*Fq12).Pow(new(big.Int).Neg(e))
	}
	result := Fq12One()
	base := a
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square().(*Fq12)
		if e.Bit(i) == 1 {
			result = result.Mul(base).(*Fq12)
		}
	}
	return result
}

// Frobenius computes a^q, the q-power Frobenius endomorphism on Fq12.
func (a *Fq12) Frobenius() *Fq12 { return a.Pow(field.FqModulus) }

// FrobeniusK computes a^(q^k) by iterating the Frobenius endomorphism,
// covering the pi^2, pi^3, pi^6 iterates. The final exponentiation in
// package bls12381 raises to q^2 with Pow directly rather than calling this.
func (a *Fq12) FrobeniusK(k int) *Fq12 {
	result := a
	for i := 0; i < k; i++ {
		result = result.Frobenius()
	}
	return result
}

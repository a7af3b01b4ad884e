package tower

import (
	"fmt"

	"github.com/wyf-zk/zksnark-core/field"
)

// Fq6 is an element c0 + c1*v + c2*v^2 of F_q2[v]/(v^3 - xi), xi = 1+u.
type Fq6 struct {
	C0, C1, C2 *Fq2
}

func NewFq6(c0, c1, c2 *Fq2) *Fq6 { return &Fq6{C0: c0, C1: c1, C2: c2} }

func Fq6Zero() *Fq6 { return &Fq6{C0: Fq2Zero(), C1: Fq2Zero(), C2: Fq2Zero()} }

func Fq6One() *Fq6 { return &Fq6{C0: Fq2One(), C1: Fq2Zero(), C2: Fq2Zero()} }

func (a *Fq6) IsZero() bool { return a.C0.IsZero() && a.C1.IsZero() && a.C2.IsZero() }

func (a *Fq6) Equal(other field.Elem) bool {
	b, ok := other.(*Fq6)
	return ok && a.C0.Equal(b.C0) && a.C1.Equal(b.C1) && a.C2.Equal(b.C2)
}

func (a *Fq6) Add(other field.Elem) field.Elem {
	b := other.(*Fq6)
	return &Fq6{
		C0: a.C0.Add(b.C0).(*Fq2),
		C1: a.C1.Add(b.C1).(*Fq2),
		C2: a.C2.Add(b.C2).(*Fq2),
	}
}

func (a *Fq6) Sub(other field.Elem) field.Elem {
	b := other.(*Fq6)
	return &Fq6{
		C0: a.C0.Sub(b.C0).(*Fq2),
		C1: a.C1.Sub(b.C1).(*Fq2),
		C2: a.C2.Sub(b.C2).(*Fq2),
	}
}

func (a *Fq6) Neg() field.Elem {
	return &Fq6{C0: a.C0.Neg().(*Fq2), C1: a.C1.Neg().(*Fq2), C2: a.C2.Neg().(*Fq2)}
}

// Mul implements the Karatsuba multiplication in Fq6 against the basis
// {1, v, v^2} with v^3 = xi.
func (a *Fq6) Mul(other field.Elem) field.Elem {
	b := other.(*Fq6)
	t0 := a.C0.Mul(b.C0).(*Fq2)
	t1 := a.C1.Mul(b.C1).(*Fq2)
	t2 := a.C2.Mul(b.C2).(*Fq2)

	c0 := t0.Add(a.C1.Add(a.C2).(*Fq2).Mul(b.C1.Add(b.C2)).(*Fq2).Sub(t1.Add(t2)).(*Fq2).MulByNonResidue()).(*Fq2)
	c1 := a.C0.Add(a.C1).(*Fq2).Mul(b.C0.Add(b.C1)).(*Fq2).Sub(t0.Add(t1)).(*Fq2).Add(t2.MulByNonResidue()).(*Fq2)
	c2 := a.C0.Add(a.C2).(*Fq2).Mul(b.C0.Add(b.C2)).(*Fq2).Sub(t0.Add(t2)).(*Fq2).Add(t1).(*Fq2)

	return &Fq6{C0: c0, C1: c1, C2: c2}
}

func (a *Fq6) Square() field.Elem {
	s0 := a.C0.Square().(*Fq2)
	ab := a.C0.Mul(a.C1).(*Fq2)
	s1 := ab.Add(ab).(*Fq2)
	s2 := a.C0.Add(a.C2).(*Fq2).Sub(a.C1).(*Fq2).Square().(*Fq2)
	bc := a.C1.Mul(a.C2).(*Fq2)
	s3 := bc.Add(bc).(*Fq2)
	s4 := a.C2.Square().(*Fq2)

	c0 := s0.Add(s3.MulByNonResidue()).(*Fq2)
	c1 := s1.Add(s4.MulByNonResidue()).(*Fq2)
	c2 := s1.Add(s2).(*Fq2).Add(s3).(*Fq2).Add(s0.Neg().(*Fq2).Sub(s4)).(*Fq2)

	return &Fq6{C0: c0, C1: c1, C2: c2}
}

func (a *Fq6) Inverse() (field.Elem, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("%w: inverse of zero in Fq6", field.ErrDomain)
	}
	t0 := a.C0.Square().(*Fq2)
	t1 := a.C1.Square().(*Fq2)
	t2 := a.C2.Square().(*Fq2)
	t3 := a.C0.Mul(a.C1).(*Fq2)
	t4 := a.C0.Mul(a.C2).(*Fq2)
	t5 := a.C1.Mul(a.C2).(*Fq2)

	c0 := t0.Sub(t5.MulByNonResidue()).(*Fq2)
	c1 := t2.MulByNonResidue().Sub(t3).(*Fq2)
	c2 := t1.Sub(t4).(*Fq2)

	t6 := a.C0.Mul(c0).(*Fq2)
	t6 = t6.Add(a.C2.Mul(c1).(*Fq2).Add(a.C1.Mul(c2).(*Fq2)).(*Fq2).MulByNonResidue()).(*Fq2)
	t6Inv, err := t6.Inverse()
	if err != nil {
		return nil, err
	}
	inv := t6Inv.(*Fq2)

	return &Fq6{
		C0: c0.Mul(inv).(*Fq2),
		C1: c1.Mul(inv).(*Fq2),
		C2: c2.Mul(inv).(*Fq2),
	}, nil
}

// MulByV multiplies a by v, the Fq6 tower variable: since v^3 = xi,
// v*(c0+c1 v+c2 v^2) = c2 xi + c0 v + c1 v^2.
func (a *Fq6) MulByV() *Fq6 {
	return &Fq6{C0: a.C2.MulByNonResidue(), C1: a.C0, C2: a.C1}
}

// MulByFq2 multiplies a by an Fq2 scalar.
func (a *Fq6) MulByFq2(s *Fq2) *Fq6 {
	return &Fq6{C0: a.C0.Mul(s).(*Fq2), C1: a.C1.Mul(s).(*Fq2), C2: a.C2.Mul(s).(*Fq2)}
}

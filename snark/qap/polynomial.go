// Package qap turns an R1CS into a Quadratic Arithmetic Program:
// per-witness-index polynomials A_i, B_i, C_i interpolated through the
// R1CS rows at fixed points, plus the target polynomial t(x) whose
// roots are those same points.
package qap

import "github.com/wyf-zk/zksnark-core/field"

// Polynomial is stored in coefficient form, lowest degree first.
// Polynomial(nil) and Polynomial{} both represent the zero polynomial.
type Polynomial []*field.Fr

func Zero() Polynomial { return Polynomial{} }

func FromCoeffs(c ...*field.Fr) Polynomial { return Polynomial(c) }

// Degree returns -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

func (p Polynomial) trim() Polynomial {
	d := p.Degree()
	if d < 0 {
		return Polynomial{}
	}
	return p[:d+1]
}

func (p Polynomial) Eval(x *field.Fr) *field.Fr {
	acc := field.FrZero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.Mul(x).(*field.Fr).Add(p[i]).(*field.Fr)
	}
	return acc
}

func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = field.FrZero()
		if i < len(p) {
			out[i] = out[i].Add(p[i]).(*field.Fr)
		}
		if i < len(q) {
			out[i] = out[i].Add(q[i]).(*field.Fr)
		}
	}
	return out.trim()
}

func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Scale(field.FrOne().Neg().(*field.Fr)))
}

func (p Polynomial) Scale(s *field.Fr) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c.Mul(s).(*field.Fr)
	}
	return out.trim()
}

func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return Polynomial{}
	}
	out := make(Polynomial, len(p)+len(q)-1)
	for i := range out {
		out[i] = field.FrZero()
	}
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			out[i+j] = out[i+j].Add(a.Mul(b)).(*field.Fr)
		}
	}
	return out.trim()
}

// DivMod performs polynomial long division, returning (quotient,
// remainder) such that p = quotient*divisor + remainder.
func (p Polynomial) DivMod(divisor Polynomial) (Polynomial, Polynomial, error) {
	dd := divisor.Degree()
	if dd < 0 {
		return nil, nil, field.ErrDomain
	}
	remainder := append(Polynomial{}, p.trim()...)
	leadInv, err := divisor[dd].Inverse()
	if err != nil {
		return nil, nil, err
	}
	leadInvFr := leadInv.(*field.Fr)

	quotient := make(Polynomial, 0)
	for remainder.Degree() >= dd {
		rd := remainder.Degree()
		coeff := remainder[rd].Mul(leadInvFr).(*field.Fr)
		shift := rd - dd

		for len(quotient) <= shift {
			quotient = append(quotient, field.FrZero())
		}
		quotient[shift] = coeff

		term := make(Polynomial, shift+dd+1)
		for i := range term {
			term[i] = field.FrZero()
		}
		for i, c := range divisor {
			term[shift+i] = c.Mul(coeff).(*field.Fr)
		}
		remainder = remainder.Sub(term)
	}
	return quotient.trim(), remainder.trim(), nil
}

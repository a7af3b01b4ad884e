package field

// F_q is the BLS12-381 base field. G1 coordinates live directly in F_q;
// the extension tower in package tower (F_q2, F_q6, F_q12) is built on
// top of it and G2 coordinates live in F_q2.

import (
	"fmt"
	"math/big"
)

// FqModulus is the BLS12-381 base-field prime q.
var FqModulus, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

// Fq is an element of Z/qZ, always held in canonical form (0 <= v < q).
type Fq struct {
	v *big.Int
}

func FqZero() *Fq { return &Fq{v: new(big.Int)} }

func FqOne() *Fq { return &Fq{v: big.NewInt(1)} }

// NewFq reduces v modulo q.
func NewFq(v *big.Int) *Fq {
	return &Fq{v: new(big.Int).Mod(v, FqModulus)}
}

// FqFromCanonical requires 0 <= v < q, rejecting non-canonical encodings
// of untrusted input with ErrDomain.
func FqFromCanonical(v *big.Int) (*Fq, error) {
	if v.Sign() < 0 || v.Cmp(FqModulus) >= 0 {
		return nil, fmt.Errorf("%w: base field value %s out of range", ErrDomain, v)
	}
	return &Fq{v: new(big.Int).Set(v)}, nil
}

func FqFromUint64(v uint64) *Fq {
	return &Fq{v: new(big.Int).Mod(new(big.Int).SetUint64(v), FqModulus)}
}

func (a *Fq) BigInt() *big.Int { return new(big.Int).Set(a.v) }

func (a *Fq) IsZero() bool { return a.v.Sign() == 0 }

func (a *Fq) IsOne() bool { return a.v.Cmp(big.NewInt(1)) == 0 }

func (a *Fq) Equal(other Elem) bool {
	b, ok := other.(*Fq)
	return ok && a.v.Cmp(b.v) == 0
}

func (a *Fq) Add(other Elem) Elem {
	b := other.(*Fq)
	return &Fq{v: new(big.Int).Mod(new(big.Int).Add(a.v, b.v), FqModulus)}
}

func (a *Fq) Sub(other Elem) Elem {
	b := other.(*Fq)
	return &Fq{v: new(big.Int).Mod(new(big.Int).Sub(a.v, b.v), FqModulus)}
}

func (a *Fq) Mul(other Elem) Elem {
	b := other.(*Fq)
	return &Fq{v: new(big.Int).Mod(new(big.Int).Mul(a.v, b.v), FqModulus)}
}

func (a *Fq) Neg() Elem {
	if a.IsZero() {
		return FqZero()
	}
	return &Fq{v: new(big.Int).Sub(FqModulus, a.v)}
}

func (a *Fq) Square() Elem {
	return a.Mul(a)
}

// Pow raises a to the e-th power via a big-endian square-and-multiply scan.
func (a *Fq) Pow(e *big.Int) *Fq {
	result := FqOne()
	base := a
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result).(*Fq)
		if e.Bit(i) == 1 {
			result = result.Mul(base).(*Fq)
		}
	}
	return result
}

// Inverse returns a^-1 via Fermat's little theorem: a^(q-2) = a^-1.
func (a *Fq) Inverse() (Elem, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("%w: inverse of zero", ErrDomain)
	}
	exp := new(big.Int).Sub(FqModulus, big.NewInt(2))
	return a.Pow(exp), nil
}

func (a *Fq) Div(b *Fq) (*Fq, error) {
	inv, err := b.Inverse()
	if err != nil {
		return nil, err
	}
	return a.Mul(inv).(*Fq), nil
}

// Sqrt returns a square root of a, if one exists. q % 4 == 3 for the
// BLS12-381 base field, so the Tonelli-Shanks shortcut a^((q+1)/4)
// applies directly; the result is checked by squaring since the
// shortcut is only valid when a is actually a quadratic residue.
func (a *Fq) Sqrt() (*Fq, bool) {
	if a.IsZero() {
		return FqZero(), true
	}
	exp := new(big.Int).Add(FqModulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := a.Pow(exp)
	if root.Square().(*Fq).Equal(a) {
		return root, true
	}
	return nil, false
}

// Bytes encodes a as 48 bytes big-endian, the width of the BLS12-381
// base field (ceil(381/8)).
func (a *Fq) Bytes() [48]byte {
	var out [48]byte
	a.v.FillBytes(out[:])
	return out
}

// FqFromBytes decodes 48 big-endian bytes into a canonical element.
func FqFromBytes(b []byte) (*Fq, error) {
	if len(b) != 48 {
		return nil, fmt.Errorf("%w: base field encoding must be 48 bytes, got %d", ErrDomain, len(b))
	}
	return FqFromCanonical(new(big.Int).SetBytes(b))
}

func (a *Fq) String() string { return a.v.String() }

// fqField adapts the Fq type to the Field factory interface.
type fqField struct{}

func (fqField) Zero() Elem { return FqZero() }
func (fqField) One() Elem  { return FqOne() }

// FqField is the Field implementation curve.Curve uses for G1.
var FqField Field = fqField{}

// frField adapts Fr to the Field factory interface.
type frField struct{}

func (frField) Zero() Elem { return FrZero() }
func (frField) One() Elem  { return FrOne() }

// FrField is the Field implementation the R1CS/QAP/Bulletproofs packages
// use for scalar arithmetic.
var FrField Field = frField{}

package field

// F_r is the BLS12-381 scalar field: the order of the prime-order subgroups
// G1 and G2. It is the field the R1CS/QAP pipeline and Bulletproofs work
// over, and the field scalars in point multiplication are reduced into.

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// FrModulus is the BLS12-381 subgroup order r.
var FrModulus, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// Fr is an element of Z/rZ, always held in canonical form (0 <= v < r).
type Fr struct {
	v *big.Int
}

// FrZero returns the additive identity.
func FrZero() *Fr { return &Fr{v: new(big.Int)} }

// FrOne returns the multiplicative identity.
func FrOne() *Fr { return &Fr{v: big.NewInt(1)} }

// NewFr reduces v modulo r and returns the resulting element. Unlike
// FrFromCanonical, it never fails: callers that already hold a canonical
// residue and want to reject out-of-range input should use FrFromCanonical.
func NewFr(v *big.Int) *Fr {
	return &Fr{v: new(big.Int).Mod(v, FrModulus)}
}

// FrFromCanonical wraps v as an Fr, requiring 0 <= v < r. It is the
// constructor to use when decoding untrusted input (e.g. deserialized
// scalars) where an out-of-range value is an ErrDomain, not silently
// reduced.
func FrFromCanonical(v *big.Int) (*Fr, error) {
	if v.Sign() < 0 || v.Cmp(FrModulus) >= 0 {
		return nil, fmt.Errorf("%w: scalar %s out of range", ErrDomain, v)
	}
	return &Fr{v: new(big.Int).Set(v)}, nil
}

// FrFromUint64 reduces a small unsigned integer into F_r. It is convenient
// for loop indices and constants (e.g. QAP interpolation points).
func FrFromUint64(v uint64) *Fr {
	return &Fr{v: new(big.Int).Mod(new(big.Int).SetUint64(v), FrModulus)}
}

// BigInt returns the canonical residue as a fresh big.Int.
func (a *Fr) BigInt() *big.Int { return new(big.Int).Set(a.v) }

func (a *Fr) IsZero() bool { return a.v.Sign() == 0 }

func (a *Fr) IsOne() bool { return a.v.Cmp(big.NewInt(1)) == 0 }

func (a *Fr) Equal(other Elem) bool {
	b, ok := other.(*Fr)
	return ok && a.v.Cmp(b.v) == 0
}

func (a *Fr) Add(other Elem) Elem {
	b := other.(*Fr)
	return &Fr{v: new(big.Int).Mod(new(big.Int).Add(a.v, b.v), FrModulus)}
}

func (a *Fr) Sub(other Elem) Elem {
	b := other.(*Fr)
	return &Fr{v: new(big.Int).Mod(new(big.Int).Sub(a.v, b.v), FrModulus)}
}

func (a *Fr) Mul(other Elem) Elem {
	b := other.(*Fr)
	return &Fr{v: new(big.Int).Mod(new(big.Int).Mul(a.v, b.v), FrModulus)}
}

func (a *Fr) Neg() Elem {
	if a.IsZero() {
		return FrZero()
	}
	return &Fr{v: new(big.Int).Sub(FrModulus, a.v)}
}

func (a *Fr) Square() Elem {
	return a.Mul(a)
}

// Pow raises a to the e-th power via a big-endian square-and-multiply scan
// of e's bits.
func (a *Fr) Pow(e *big.Int) *Fr {
	result := FrOne()
	base := a
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result).(*Fr)
		if e.Bit(i) == 1 {
			result = result.Mul(base).(*Fr)
		}
	}
	return result
}

// Inverse returns a^-1 via Fermat's little theorem: a^(r-2) = a^-1.
func (a *Fr) Inverse() (Elem, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("%w: inverse of zero", ErrDomain)
	}
	exp := new(big.Int).Sub(FrModulus, big.NewInt(2))
	return a.Pow(exp), nil
}

// Div returns a/b, failing with ErrDomain when b is zero.
func (a *Fr) Div(b *Fr) (*Fr, error) {
	inv, err := b.Inverse()
	if err != nil {
		return nil, err
	}
	return a.Mul(inv).(*Fr), nil
}

// Bytes encodes a as 32 bytes, big-endian, per the F_r serialization
// contract in the spec. The fixed 32-byte width is exactly what
// uint256.Int models, so the encode/decode path goes through it rather
// than through ad hoc zero-padding of big.Int.Bytes.
func (a *Fr) Bytes() [32]byte {
	var u uint256.Int
	u.SetFromBig(a.v)
	return u.Bytes32()
}

// FrFromBytes decodes 32 big-endian bytes into a canonical element,
// rejecting encodings that are >= r.
func FrFromBytes(b []byte) (*Fr, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: scalar encoding must be 32 bytes, got %d", ErrDomain, len(b))
	}
	var u uint256.Int
	u.SetBytes32(b)
	return FrFromCanonical(u.ToBig())
}

func (a *Fr) String() string { return a.v.String() }

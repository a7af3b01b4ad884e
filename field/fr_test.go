package field

import (
	"math/big"
	"testing"
)

func TestFrAddSubInverse(t *testing.T) {
	a := FrFromUint64(7)
	b := FrFromUint64(11)
	sum := a.Add(b).(*Fr)
	if sum.Sub(b).(*Fr).BigInt().Cmp(a.BigInt()) != 0 {
		t.Fatal("a+b-b != a")
	}
}

func TestFrMulInverse(t *testing.T) {
	a := FrFromUint64(123456789)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	one := a.Mul(inv)
	if !one.(*Fr).IsOne() {
		t.Fatalf("a*a^-1 != 1, got %s", one.(*Fr))
	}
}

func TestFrInverseZeroFails(t *testing.T) {
	if _, err := FrZero().Inverse(); err == nil {
		t.Fatal("expected ErrDomain inverting zero")
	}
}

func TestFrDistributivity(t *testing.T) {
	a := FrFromUint64(3)
	b := FrFromUint64(5)
	c := FrFromUint64(7)
	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Fatal("a*(b+c) != a*b+a*c")
	}
}

func TestFrFermatLittleTheorem(t *testing.T) {
	a := FrFromUint64(999)
	exp := new(big.Int).Sub(FrModulus, big.NewInt(1))
	if !a.Pow(exp).IsOne() {
		t.Fatal("a^(r-1) != 1")
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	a := FrFromUint64(424242)
	ab := a.Bytes()
	b, err := FrFromBytes(ab[:])
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("round trip mismatch")
	}
}

func TestFrFromCanonicalRejectsOutOfRange(t *testing.T) {
	if _, err := FrFromCanonical(FrModulus); err == nil {
		t.Fatal("expected ErrDomain for value == modulus")
	}
}

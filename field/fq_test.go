package field

import "testing"

func TestFqMulInverse(t *testing.T) {
	a := FqFromUint64(4919)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !a.Mul(inv).(*Fq).IsOne() {
		t.Fatal("a*a^-1 != 1")
	}
}

func TestFqSqrt(t *testing.T) {
	a := FqFromUint64(16)
	root, ok := a.Sqrt()
	if !ok {
		t.Fatal("expected square root to exist")
	}
	if !root.Square().(*Fq).Equal(a) {
		t.Fatal("sqrt(a)^2 != a")
	}
}

func TestFqBytesRoundTrip(t *testing.T) {
	a := FqFromUint64(778899)
	bz := a.Bytes()
	b, err := FqFromBytes(bz[:])
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("round trip mismatch")
	}
}

func TestFqNegInvolution(t *testing.T) {
	a := FqFromUint64(31337)
	if !a.Neg().(*Fq).Neg().(*Fq).Equal(a) {
		t.Fatal("-(-a) != a")
	}
}

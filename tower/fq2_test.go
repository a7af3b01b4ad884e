package tower

import (
	"testing"

	"github.com/wyf-zk/zksnark-core/field"
)

func TestFq2MulInverse(t *testing.T) {
	a := NewFq2(field.FqFromUint64(3), field.FqFromUint64(5))
	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	prod := a.Mul(inv)
	if !prod.Equal(Fq2One()) {
		t.Fatal("a*a^-1 != 1")
	}
}

func TestFq2SquareMatchesMul(t *testing.T) {
	a := NewFq2(field.FqFromUint64(17), field.FqFromUint64(19))
	if !a.Square().Equal(a.Mul(a)) {
		t.Fatal("a^2 != a*a")
	}
}

func TestFq2ConjugateIsFrobenius(t *testing.T) {
	a := NewFq2(field.FqFromUint64(7), field.FqFromUint64(11))
	if !a.Frobenius().Equal(a.Conjugate()) {
		t.Fatal("Frobenius should equal conjugate on Fq2")
	}
}

func TestFq2BytesRoundTrip(t *testing.T) {
	a := NewFq2(field.FqFromUint64(42), field.FqFromUint64(99))
	b := a.Bytes()
	back, err := Fq2FromBytes(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(back) {
		t.Fatal("round trip mismatch")
	}
}

func TestFq2Sqrt(t *testing.T) {
	a := NewFq2(field.FqFromUint64(3), field.FqFromUint64(5))
	sq := a.Square().(*Fq2)
	root, ok := sq.Sqrt()
	if !ok {
		t.Fatal("expected sqrt to exist for a perfect square")
	}
	if !root.Square().(*Fq2).Equal(sq) {
		t.Fatal("sqrt(a^2)^2 != a^2")
	}
}

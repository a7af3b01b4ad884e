package tower

import (
	"math/big"
	"testing"

	"github.com/wyf-zk/zksnark-core/field"
)

func randFq12(seed uint64) *Fq12 {
	mk := func(n uint64) *Fq2 {
		return NewFq2(field.FqFromUint64(seed*7+n), field.FqFromUint64(seed*13+n))
	}
	return NewFq12(
		NewFq6(mk(1), mk(2), mk(3)),
		NewFq6(mk(4), mk(5), mk(6)),
	)
}

func TestFq12MulInverse(t *testing.T) {
	a := randFq12(3)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !a.Mul(inv).(*Fq12).Equal(Fq12One()) {
		t.Fatal("a*a^-1 != 1")
	}
}

func TestFq12SquareMatchesMul(t *testing.T) {
	a := randFq12(5)
	if !a.Square().Equal(a.Mul(a)) {
		t.Fatal("a^2 != a*a")
	}
}

func TestFq12PowOne(t *testing.T) {
	a := randFq12(9)
	if !a.Pow(big.NewInt(1)).Equal(a) {
		t.Fatal("a^1 != a")
	}
	if !a.Pow(big.NewInt(0)).Equal(Fq12One()) {
		t.Fatal("a^0 != 1")
	}
}

func TestFq12ConjugateTwiceIsIdentity(t *testing.T) {
	a := randFq12(11)
	if !a.Conjugate().Conjugate().Equal(a) {
		t.Fatal("conj(conj(a)) != a")
	}
}

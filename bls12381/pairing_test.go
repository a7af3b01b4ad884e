package bls12381

import (
	"math/big"
	"testing"

	"github.com/wyf-zk/zksnark-core/tower"
)

func TestPairingBilinearity(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := big.NewInt(3)
	b := big.NewInt(5)

	lhs := Pair(g1.ScalarMul(a), g2.ScalarMul(b))
	base := Pair(g1, g2)
	ab := new(big.Int).Mul(a, b)
	rhs := base.Pow(ab)

	if !lhs.Equal(rhs) {
		t.Fatal("e([a]P,[b]Q) != e(P,Q)^(ab)")
	}
}

func TestPairingNonDegenerate(t *testing.T) {
	result := Pair(G1Generator(), G2Generator())
	if result.Equal(tower.Fq12One()) {
		t.Fatal("e(g1,g2) should not be the identity")
	}
}

func TestPairingInfinityIsOne(t *testing.T) {
	if !Pair(G1Infinity(), G2Generator()).Equal(tower.Fq12One()) {
		t.Fatal("e(O,Q) should be 1")
	}
	if !Pair(G1Generator(), G2Infinity()).Equal(tower.Fq12One()) {
		t.Fatal("e(P,O) should be 1")
	}
}

func TestMultiPairingCheckMatchesManual(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := big.NewInt(4)

	// e([a]P, Q) * e(P, [-a]Q) == 1
	ps := []*G1{g1.ScalarMul(a), g1}
	qs := []*G2{g2, g2.ScalarMul(new(big.Int).Neg(a))}

	if !MultiPairingCheck(ps, qs) {
		t.Fatal("expected multi-pairing identity to hold")
	}
}

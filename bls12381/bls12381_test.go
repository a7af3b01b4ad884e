package bls12381

import (
	"math/big"
	"testing"

	"github.com/wyf-zk/zksnark-core/field"
)

func TestGeneratorsOnCurve(t *testing.T) {
	if !G1Generator().IsOnCurve() {
		t.Fatal("G1 generator not on curve")
	}
	if !G2Generator().IsOnCurve() {
		t.Fatal("G2 generator not on curve")
	}
}

func TestGeneratorsInSubgroup(t *testing.T) {
	if !InSubgroupG1(G1Generator()) {
		t.Fatal("G1 generator not in subgroup")
	}
	if !InSubgroupG2(G2Generator()) {
		t.Fatal("G2 generator not in subgroup")
	}
}

func TestG1DoublingMatchesAdd(t *testing.T) {
	g := G1Generator()
	acc := G1Infinity()
	for i := 1; i <= 10; i++ {
		acc = acc.Add(g)
		viaScalar := g.ScalarMul(big.NewInt(int64(i)))
		if !acc.Equal(viaScalar) {
			t.Fatalf("%d*g1 via repeated add != via ScalarMul", i)
		}
	}
}

func TestG2DoublingMatchesAdd(t *testing.T) {
	g := G2Generator()
	acc := G2Infinity()
	for i := 1; i <= 10; i++ {
		acc = acc.Add(g)
		viaScalar := g.ScalarMul(big.NewInt(int64(i)))
		if !acc.Equal(viaScalar) {
			t.Fatalf("%d*g2 via repeated add != via ScalarMul", i)
		}
	}
}

func TestG1ScalarMulByOrderIsInfinity(t *testing.T) {
	g := G1Generator()
	if !g.ScalarMul(field.FrModulus).IsInfinity() {
		t.Fatal("[r]g1 should be infinity")
	}
}

func TestG1InfinityIsIdentity(t *testing.T) {
	g := G1Generator()
	if !g.Add(G1Infinity()).Equal(g) {
		t.Fatal("g1 + infinity != g1")
	}
}

func TestG1NegCancels(t *testing.T) {
	g := G1Generator()
	if !g.Add(g.Neg()).IsInfinity() {
		t.Fatal("g1 + (-g1) should be infinity")
	}
}

func TestSerializeG1RoundTrip(t *testing.T) {
	g := G1Generator().ScalarMul(big.NewInt(12345))
	b, err := SerializeG1(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DeserializeG1(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(back) {
		t.Fatal("G1 round trip mismatch")
	}
}

func TestSerializeG1Infinity(t *testing.T) {
	b, err := SerializeG1(G1Infinity())
	if err != nil {
		t.Fatal(err)
	}
	back, err := DeserializeG1(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsInfinity() {
		t.Fatal("expected infinity round trip")
	}
}

func TestSerializeG2RoundTrip(t *testing.T) {
	g := G2Generator().ScalarMul(big.NewInt(6789))
	b, err := SerializeG2(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DeserializeG2(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(back) {
		t.Fatal("G2 round trip mismatch")
	}
}

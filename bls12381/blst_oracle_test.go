//go:build blst

// Cross-checks this package's from-scratch G1 scalar multiplication
// against the production supranational/blst library. Build and run with
// go test -tags blst ./bls12381/.
package bls12381

import (
	"math/big"
	"testing"

	blst "github.com/supranational/blst/bindings/go"
	"github.com/wyf-zk/zksnark-core/field"
)

func TestScalarMulMatchesBlst(t *testing.T) {
	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(12345),
		new(big.Int).Sub(field.FrModulus, big.NewInt(1)),
	}

	for _, k := range scalars {
		ours, err := SerializeG1(G1Generator().ScalarMul(k))
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}

		var skBytes [32]byte
		k.FillBytes(skBytes[:])
		sk := new(blst.SecretKey).Deserialize(skBytes[:])
		if sk == nil {
			t.Fatalf("blst: invalid scalar %s", k)
		}
		pk := new(blst.P1Affine).From(sk)
		theirs := pk.Compress()

		if string(ours[:]) != string(theirs) {
			t.Errorf("scalar %s: G1 mismatch\nours:  %x\nblst:  %x", k, ours, theirs)
		}
	}
}

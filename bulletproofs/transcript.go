// Package bulletproofs implements the inner-product argument and the
// bit-decomposition range proof built on it, reusing the scalar field
// and G1 group from the pairing stack as their commitment machinery.
package bulletproofs

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/crypto"
	"github.com/wyf-zk/zksnark-core/field"
)

// transcript is a Fiat-Shamir hash absorber: every point the prover
// emits is folded into the running digest before the next challenge is
// drawn, so a verifier replaying the same absorption order derives the
// identical challenges. Absorption order is domain tag, then the emitted
// points in emission order. Scalars are not absorbed: the range proof's
// THat, TauX and Mu never enter the digest.
type transcript struct {
	state []byte
}

func newTranscript(domain string) *transcript {
	return &transcript{state: crypto.Keccak256([]byte(domain))}
}

func (t *transcript) absorbPoint(p *bls12381.G1) {
	enc, err := bls12381.SerializeG1(p)
	if err != nil {
		// Infinity serializes cleanly; a malformed point here would
		// mean a bug upstream, not bad input, so there is nothing
		// sensible to recover by continuing.
		panic(err)
	}
	t.absorb(enc[:])
}

func (t *transcript) absorb(data []byte) {
	t.state = crypto.Keccak256(t.state, data)
}

// challenge derives the next F_r challenge and advances the transcript
// state, so the same challenge is never produced twice.
func (t *transcript) challenge() *field.Fr {
	digest := crypto.Keccak256(t.state, []byte("challenge"))
	t.state = digest

	c := field.NewFr(new(big.Int).SetBytes(digest))
	if c.IsZero() {
		return field.FrOne()
	}
	return c
}

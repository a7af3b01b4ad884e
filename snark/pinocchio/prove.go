package pinocchio

import (
	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark/qap"
)

// Proof is the eight-group-element Pinocchio proof.
type Proof struct {
	PiA, PiAp *bls12381.G1
	PiB       *bls12381.G2
	PiBp      *bls12381.G1
	PiC, PiCp *bls12381.G1
	PiH       *bls12381.G1
	PiK       *bls12381.G1
}

// Prove computes a proof that w satisfies the QAP q was built from,
// using the private-index bases in pk. w must be a full witness vector
// (including w[0] = 1 and the public prefix); it is not itself checked
// for R1CS satisfaction here, since a correct h(x) division already
// implies it (Build's H fails with ErrUnsatisfiedConstraint otherwise).
func Prove(pk *ProvingKey, q *qap.QAP, w []*field.Fr) (*Proof, error) {
	h, err := q.H(w)
	if err != nil {
		return nil, err
	}

	piA := bls12381.G1Infinity()
	piAp := bls12381.G1Infinity()
	piB := bls12381.G2Infinity()
	piBp := bls12381.G1Infinity()
	piC := bls12381.G1Infinity()
	piCp := bls12381.G1Infinity()

	for i, idx := range pk.Private {
		if w[i].IsZero() {
			continue
		}
		piA = piA.Add(idx.g1A.ScalarMulFr(w[i]))
		piAp = piAp.Add(idx.g1Ap.ScalarMulFr(w[i]))
		piB = piB.Add(idx.g2B.ScalarMulFr(w[i]))
		piBp = piBp.Add(idx.g1Bp.ScalarMulFr(w[i]))
		piC = piC.Add(idx.g1C.ScalarMulFr(w[i]))
		piCp = piCp.Add(idx.g1Cp.ScalarMulFr(w[i]))
	}

	piH := bls12381.G1Infinity()
	for k, coeff := range h {
		if coeff.IsZero() {
			continue
		}
		piH = piH.Add(pk.HPowers[k].ScalarMulFr(coeff))
	}

	// pi_K is built from the independent beta basis, not from the
	// alpha-shifted pi_A'/pi_B'/pi_C' already computed above -- reusing
	// those would make Verify's linkage check tautological.
	piK := bls12381.G1Infinity()
	for i, betaBasis := range pk.Beta {
		if w[i].IsZero() {
			continue
		}
		piK = piK.Add(betaBasis.ScalarMulFr(w[i]))
	}

	return &Proof{
		PiA: piA, PiAp: piAp,
		PiB: piB, PiBp: piBp,
		PiC: piC, PiCp: piCp,
		PiH: piH,
		PiK: piK,
	}, nil
}

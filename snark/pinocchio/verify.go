package pinocchio

import (
	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark"
)

// Verify checks proof against vk and the public input assignment
// (indices 1..NumPublic; index 0's implicit value is always 1). Any
// malformed input or failed pairing check is reported uniformly as
// snark.ErrVerificationFailed, per the error taxonomy's propagation
// policy: the verifier treats every failure mode as semantic rejection.
func Verify(vk *VerifyingKey, publicInputs []*field.Fr, proof *Proof) error {
	if len(publicInputs) != vk.NumPublic {
		setupLog.Debug("verify rejected", "reason", "public input count mismatch", "want", vk.NumPublic, "got", len(publicInputs))
		return snark.ErrVerificationFailed
	}

	w := make([]*field.Fr, vk.NumPublic+1)
	w[0] = field.FrOne()
	copy(w[1:], publicInputs)

	apub := bls12381.G1Infinity()
	bpub := bls12381.G2Infinity()
	cpub := bls12381.G1Infinity()
	for i, idx := range vk.Public {
		if w[i].IsZero() {
			continue
		}
		apub = apub.Add(idx.g1A.ScalarMulFr(w[i]))
		bpub = bpub.Add(idx.g2B.ScalarMulFr(w[i]))
		cpub = cpub.Add(idx.g1C.ScalarMulFr(w[i]))
	}

	// Check 1: pi_A is the evaluation of A(s) it claims to be.
	if !bls12381.Pair(proof.PiA, vk.AlphaAG2).Equal(bls12381.Pair(proof.PiAp, vk.G2Gen)) {
		setupLog.Debug("verify rejected", "reason", "pi_A knowledge check failed")
		return snark.ErrVerificationFailed
	}
	// Check 2: same, for B, pairing the fixed alpha_B*g1 element against
	// pi_B (in G2) instead of the other way around.
	if !bls12381.Pair(vk.AlphaBG1, proof.PiB).Equal(bls12381.Pair(proof.PiBp, vk.G2Gen)) {
		setupLog.Debug("verify rejected", "reason", "pi_B knowledge check failed")
		return snark.ErrVerificationFailed
	}
	// Check 3: same, for C.
	if !bls12381.Pair(proof.PiC, vk.AlphaCG2).Equal(bls12381.Pair(proof.PiCp, vk.G2Gen)) {
		setupLog.Debug("verify rejected", "reason", "pi_C knowledge check failed")
		return snark.ErrVerificationFailed
	}

	// Check 4: the core QAP divisibility identity,
	// A(s)*B(s) - C(s) = H(s)*T(s).
	fullA := proof.PiA.Add(apub)
	fullB := proof.PiB.Add(bpub)
	fullC := proof.PiC.Add(cpub)
	lhs := bls12381.Pair(fullA, fullB)
	rhs := bls12381.Pair(fullC, vk.G2Gen).Mul(bls12381.Pair(proof.PiH, vk.ZtG2))
	if !lhs.Equal(rhs) {
		setupLog.Debug("verify rejected", "reason", "QAP divisibility check failed")
		return snark.ErrVerificationFailed
	}

	// Check 5: pi_K binds the plain (non-alpha) pi_A, pi_B, pi_C to the
	// same private witness, preventing a forger from mixing inconsistent
	// A/B/C parts that would otherwise each pass checks 1-3 individually.
	// pi_B lives in G2, so its contribution is folded in by pairing the
	// fixed beta*gamma*G1 element against it rather than against G2,
	// which is the bilinear identity e(aP,bQ) = e(bP,aQ) applied to the
	// beta*gamma scalar.
	lhsK := bls12381.Pair(proof.PiK, vk.GammaG2)
	rhsK := bls12381.Pair(proof.PiA, vk.BetaGammaG2).
		Mul(bls12381.Pair(vk.BetaGammaG1, proof.PiB)).
		Mul(bls12381.Pair(proof.PiC, vk.BetaGammaG2))
	if !lhsK.Equal(rhsK) {
		setupLog.Debug("verify rejected", "reason", "pi_K linkage check failed")
		return snark.ErrVerificationFailed
	}

	setupLog.Debug("verify accepted")
	return nil
}

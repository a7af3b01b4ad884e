// Package pinocchio implements the protocol-2 trusted setup, prover,
// and verifier closed over a QAP: setup samples the toxic-waste
// secrets and publishes encrypted evaluations of every A_i, B_i, C_i at
// a random point, the prover combines them with a satisfying witness,
// and the verifier checks the resulting pairing equations.
package pinocchio

import (
	"crypto/rand"

	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/log"
	"github.com/wyf-zk/zksnark-core/snark/qap"
)

var setupLog = log.Default().Module("pinocchio")

// index bundles the six encrypted evaluations published per witness
// index: A and C live in G1 (paired against G2 in the core identity),
// B lives in G2 for the same reason, and each of A, B, C also gets an
// alpha-shifted sibling used by the per-type knowledge checks. B's
// alpha-shifted sibling lives in G1, mirroring A and C: the B check pairs
// pi_B against the fixed alpha_B*G1 element and pi_B' against the G2
// generator.
type index struct {
	g1A, g1Ap *bls12381.G1
	g2B       *bls12381.G2
	g1Bp      *bls12381.G1
	g1C, g1Cp *bls12381.G1
}

// ProvingKey holds the secret-encrypted bases the prover combines with
// the private part of the witness (every index strictly after the
// public range), plus the powers of s needed to commit to h(x).
type ProvingKey struct {
	Private map[int]index

	// Beta holds, per private index i, beta*(A_i(s)+B_i(s)+C_i(s)) on
	// G1 -- a basis independent of alphaA/alphaB/alphaC, used only to
	// build pi_K. It protects the mid (private) witness representation
	// the same way the original Pinocchio non-malleability check does:
	// a forger combining A/B/C parts from inconsistent witnesses cannot
	// reproduce a single pi_K satisfying the linkage check in Verify.
	Beta map[int]*bls12381.G1

	HPowers []*bls12381.G1
}

// VerifyingKey holds the public bases plus the fixed checking elements
// the verifier needs to recompute the public contribution and check
// the pairing equations.
type VerifyingKey struct {
	Public map[int]index // indices 0..NumPublic, 0 being the constant slot

	G1Gen *bls12381.G1
	G2Gen *bls12381.G2

	AlphaAG2    *bls12381.G2
	AlphaBG1    *bls12381.G1
	AlphaCG2    *bls12381.G2
	GammaG2     *bls12381.G2
	BetaGammaG1 *bls12381.G1
	BetaGammaG2 *bls12381.G2
	ZtG2        *bls12381.G2

	NumPublic int
	NumVars   int
}

// Setup runs the trusted-setup ceremony for q, sampling its secrets
// from the OS random source. The secrets s, alphaA, alphaB, alphaC,
// beta, gamma are toxic waste: once the keys are built this function
// holds no further reference to them, and callers must not try to
// recover them.
func Setup(q *qap.QAP) (*ProvingKey, *VerifyingKey, error) {
	setupLog.Debug("running trusted setup", "numVars", q.NumVars, "numPublic", q.NumPublic)
	s, err := randomFr()
	if err != nil {
		return nil, nil, err
	}
	alphaA, err := randomFr()
	if err != nil {
		return nil, nil, err
	}
	alphaB, err := randomFr()
	if err != nil {
		return nil, nil, err
	}
	alphaC, err := randomFr()
	if err != nil {
		return nil, nil, err
	}
	beta, err := randomFr()
	if err != nil {
		return nil, nil, err
	}
	gamma, err := randomFr()
	if err != nil {
		return nil, nil, err
	}

	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()

	buildIndex := func(i int) (index, *field.Fr) {
		a := q.A[i].Eval(s)
		b := q.B[i].Eval(s)
		c := q.C[i].Eval(s)
		sum := a.Add(b).(*field.Fr).Add(c).(*field.Fr)
		return index{
			g1A:  g1.ScalarMulFr(a),
			g1Ap: g1.ScalarMulFr(alphaA.Mul(a).(*field.Fr)),
			g2B:  g2.ScalarMulFr(b),
			g1Bp: g1.ScalarMulFr(alphaB.Mul(b).(*field.Fr)),
			g1C:  g1.ScalarMulFr(c),
			g1Cp: g1.ScalarMulFr(alphaC.Mul(c).(*field.Fr)),
		}, sum
	}

	pk := &ProvingKey{Private: map[int]index{}, Beta: map[int]*bls12381.G1{}}
	vk := &VerifyingKey{
		Public:      map[int]index{},
		G1Gen:       g1,
		G2Gen:       g2,
		AlphaAG2:    g2.ScalarMulFr(alphaA),
		AlphaBG1:    g1.ScalarMulFr(alphaB),
		AlphaCG2:    g2.ScalarMulFr(alphaC),
		GammaG2:     g2.ScalarMulFr(gamma),
		BetaGammaG1: g1.ScalarMulFr(beta.Mul(gamma).(*field.Fr)),
		BetaGammaG2: g2.ScalarMulFr(beta.Mul(gamma).(*field.Fr)),
		ZtG2:        g2.ScalarMulFr(q.T.Eval(s)),
		NumPublic:   q.NumPublic,
		NumVars:     q.NumVars,
	}

	for i := 0; i <= q.NumPublic; i++ {
		vk.Public[i], _ = buildIndex(i)
	}
	for i := q.NumPublic + 1; i < q.NumVars; i++ {
		idx, sum := buildIndex(i)
		pk.Private[i] = idx
		pk.Beta[i] = g1.ScalarMulFr(beta.Mul(sum).(*field.Fr))
	}

	// h(x) has degree at most m-2 for a satisfied witness (deg(A*B-C)
	// <= 2*(m-1), deg(T) = m), so m-1 powers of s on G1 suffice; the loop
	// below publishes m of them, s^0..s^(m-1).
	hDeg := q.T.Degree() - 1
	if hDeg < 0 {
		hDeg = 0
	}
	pk.HPowers = make([]*bls12381.G1, hDeg+1)
	acc := field.FrOne()
	for k := 0; k <= hDeg; k++ {
		pk.HPowers[k] = g1.ScalarMulFr(acc)
		acc = acc.Mul(s).(*field.Fr)
	}

	setupLog.Info("trusted setup complete", "privateKeys", len(pk.Private), "publicKeys", len(vk.Public))
	return pk, vk, nil
}

func randomFr() (*field.Fr, error) {
	v, err := rand.Int(rand.Reader, field.FrModulus)
	if err != nil {
		return nil, err
	}
	return field.NewFr(v), nil
}

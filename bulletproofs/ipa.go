package bulletproofs

import (
	"errors"

	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
)

// IPAProof is a log-sized proof that <a,b> = c for a commitment
// P = <a,G> + <b,H> + c*U, without revealing a or b: one (L,R) pair of
// curve points per halving round, plus the single remaining (a,b) pair
// once the vectors have folded down to length 1.
type IPAProof struct {
	L, R []*bls12381.G1
	A, B *field.Fr
}

func msm(points []*bls12381.G1, scalars []*field.Fr) *bls12381.G1 {
	acc := bls12381.G1Infinity()
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		acc = acc.Add(points[i].ScalarMulFr(s))
	}
	return acc
}

func innerProduct(a, b []*field.Fr) *field.Fr {
	acc := field.FrZero()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i])).(*field.Fr)
	}
	return acc
}

func scaleVec(v []*field.Fr, s *field.Fr) []*field.Fr {
	out := make([]*field.Fr, len(v))
	for i, x := range v {
		out[i] = x.Mul(s).(*field.Fr)
	}
	return out
}

func addVec(a, b []*field.Fr) []*field.Fr {
	out := make([]*field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i]).(*field.Fr)
	}
	return out
}

func addPoints(a, b []*bls12381.G1, xa, xb *field.Fr) []*bls12381.G1 {
	out := make([]*bls12381.G1, len(a))
	for i := range a {
		out[i] = a[i].ScalarMulFr(xa).Add(b[i].ScalarMulFr(xb))
	}
	return out
}

// IPAProve proves <a,b> = innerProduct(a,b) for the commitment
// P = <a,G> + <b,H> + <a,b>*U. len(a) must be a power of two and equal
// len(b), len(g), len(h).
func IPAProve(tr *transcript, g, h []*bls12381.G1, u *bls12381.G1, p *bls12381.G1, a, b []*field.Fr) (*IPAProof, error) {
	n := len(a)
	if n == 0 || n != len(b) || n != len(g) || n != len(h) {
		return nil, errors.New("bulletproofs: ipa vector length mismatch")
	}
	if n&(n-1) != 0 {
		return nil, errors.New("bulletproofs: ipa vector length must be a power of two")
	}

	proof := &IPAProof{}
	aVec, bVec, gVec, hVec := a, b, g, h

	for m := n; m > 1; m /= 2 {
		half := m / 2
		aLo, aHi := aVec[:half], aVec[half:]
		bLo, bHi := bVec[:half], bVec[half:]
		gLo, gHi := gVec[:half], gVec[half:]
		hLo, hHi := hVec[:half], hVec[half:]

		cL := innerProduct(aLo, bHi)
		cR := innerProduct(aHi, bLo)

		l := msm(gHi, aLo).Add(msm(hLo, bHi)).Add(u.ScalarMulFr(cL))
		r := msm(gLo, aHi).Add(msm(hHi, bLo)).Add(u.ScalarMulFr(cR))

		proof.L = append(proof.L, l)
		proof.R = append(proof.R, r)
		tr.absorbPoint(l)
		tr.absorbPoint(r)
		x := tr.challenge()
		xInv, err := x.Inverse()
		if err != nil {
			return nil, err
		}
		xInvFr := xInv.(*field.Fr)

		gVec = addPoints(gLo, gHi, xInvFr, x)
		hVec = addPoints(hLo, hHi, x, xInvFr)
		aVec = addVec(scaleVec(aLo, x), scaleVec(aHi, xInvFr))
		bVec = addVec(scaleVec(bLo, xInvFr), scaleVec(bHi, x))
	}

	proof.A = aVec[0]
	proof.B = bVec[0]
	return proof, nil
}

// IPAVerify checks proof against the original commitment p and
// generators g, h, u, replaying the same transcript absorption order
// the prover used.
func IPAVerify(tr *transcript, g, h []*bls12381.G1, u *bls12381.G1, p *bls12381.G1, proof *IPAProof) (bool, error) {
	n := len(g)
	if n == 0 || n != len(h) {
		return false, errors.New("bulletproofs: ipa generator length mismatch")
	}
	if n&(n-1) != 0 {
		return false, errors.New("bulletproofs: ipa generator length must be a power of two")
	}
	rounds := 0
	for m := n; m > 1; m /= 2 {
		rounds++
	}
	if len(proof.L) != rounds || len(proof.R) != rounds {
		return false, errors.New("bulletproofs: ipa proof has the wrong number of rounds")
	}

	gVec, hVec := g, h
	pFinal := p

	for round := 0; round < rounds; round++ {
		l, r := proof.L[round], proof.R[round]
		tr.absorbPoint(l)
		tr.absorbPoint(r)
		x := tr.challenge()
		xInv, err := x.Inverse()
		if err != nil {
			return false, err
		}
		xInvFr := xInv.(*field.Fr)
		xSq := x.Mul(x).(*field.Fr)
		xInvSq := xInvFr.Mul(xInvFr).(*field.Fr)

		half := len(gVec) / 2
		gVec = addPoints(gVec[:half], gVec[half:], xInvFr, x)
		hVec = addPoints(hVec[:half], hVec[half:], x, xInvFr)
		pFinal = l.ScalarMulFr(xSq).Add(pFinal).Add(r.ScalarMulFr(xInvSq))
	}

	c := proof.A.Mul(proof.B).(*field.Fr)
	want := gVec[0].ScalarMulFr(proof.A).Add(hVec[0].ScalarMulFr(proof.B)).Add(u.ScalarMulFr(c))
	return pFinal.Equal(want), nil
}

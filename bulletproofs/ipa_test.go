package bulletproofs

import (
	"testing"

	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
)

func sampleVec(vals ...uint64) []*field.Fr {
	out := make([]*field.Fr, len(vals))
	for i, v := range vals {
		out[i] = field.FrFromUint64(v)
	}
	return out
}

func genPoints(n int, label string) []*bls12381.G1 {
	gens := NewGenerators(n, label)
	return gens.Gvec
}

func TestIPAProveVerifyRoundTrip(t *testing.T) {
	n := 4
	g := genPoints(n, "ipa-test-g")
	h := genPoints(n, "ipa-test-h")
	u := bls12381.G1Generator()

	a := sampleVec(1, 2, 3, 4)
	b := sampleVec(5, 6, 7, 8)
	c := innerProduct(a, b)

	p := msm(g, a).Add(msm(h, b)).Add(u.ScalarMulFr(c))

	proveTr := newTranscript("ipa-test")
	proof, err := IPAProve(proveTr, g, h, u, p, a, b)
	if err != nil {
		t.Fatal(err)
	}

	verifyTr := newTranscript("ipa-test")
	ok, err := IPAVerify(verifyTr, g, h, u, p, proof)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected honest IPA proof to verify")
	}
}

func TestIPARejectsWrongCommitment(t *testing.T) {
	n := 4
	g := genPoints(n, "ipa-test-g2")
	h := genPoints(n, "ipa-test-h2")
	u := bls12381.G1Generator()

	a := sampleVec(1, 2, 3, 4)
	b := sampleVec(5, 6, 7, 8)
	c := innerProduct(a, b)
	p := msm(g, a).Add(msm(h, b)).Add(u.ScalarMulFr(c))

	proveTr := newTranscript("ipa-test-2")
	proof, err := IPAProve(proveTr, g, h, u, p, a, b)
	if err != nil {
		t.Fatal(err)
	}

	wrongP := p.Add(bls12381.G1Generator())
	verifyTr := newTranscript("ipa-test-2")
	ok, err := IPAVerify(verifyTr, g, h, u, wrongP, proof)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected mismatched commitment to fail verification")
	}
}

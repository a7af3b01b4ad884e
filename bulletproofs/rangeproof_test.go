package bulletproofs

import (
	"testing"

	"github.com/wyf-zk/zksnark-core/field"
)

func TestRangeProofAcceptsInRangeValue(t *testing.T) {
	n := 8
	gens := NewGenerators(n, "range-test-1")
	gamma, err := randFr()
	if err != nil {
		t.Fatal(err)
	}
	v := uint64(42)
	commitment := gens.Commit(v, gamma)

	proof, err := ProveRange(gens, v, gamma, n, commitment)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyRange(gens, commitment, n, proof)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected v=42 under n=8 to verify")
	}
}

func TestRangeProofRejectsOutOfRangeValue(t *testing.T) {
	n := 8
	gens := NewGenerators(n, "range-test-2")
	gamma, err := randFr()
	if err != nil {
		t.Fatal(err)
	}
	v := uint64(256)
	commitment := gens.Commit(v, gamma)

	proof, err := ProveRange(gens, v, gamma, n, commitment)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyRange(gens, commitment, n, proof)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected v=256 under n=8 to fail verification")
	}
}

func TestRangeProofRejectsTamperedCommitment(t *testing.T) {
	n := 8
	gens := NewGenerators(n, "range-test-3")
	gamma, err := randFr()
	if err != nil {
		t.Fatal(err)
	}
	v := uint64(7)
	commitment := gens.Commit(v, gamma)

	proof, err := ProveRange(gens, v, gamma, n, commitment)
	if err != nil {
		t.Fatal(err)
	}

	tamperedGamma := gamma.Add(field.FrOne()).(*field.Fr)
	tamperedCommitment := gens.Commit(v, tamperedGamma)

	ok, err := VerifyRange(gens, tamperedCommitment, n, proof)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected proof bound to a different blinding factor to fail")
	}
}

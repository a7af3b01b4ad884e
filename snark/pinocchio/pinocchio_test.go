package pinocchio

import (
	"testing"

	"github.com/wyf-zk/zksnark-core/bls12381"
	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark/parser"
	"github.com/wyf-zk/zksnark-core/snark/qap"
)

// buildXYWitness compiles "x*y==35" with public y, private x, and
// returns the circuit plus a satisfying witness for x=5, y=7 (the
// scenario named by the spec's concrete Pinocchio test fixture).
func buildXYWitness(t *testing.T) (*parser.Circuit, []*field.Fr) {
	t.Helper()
	eq, err := parser.ParseEquation("x * y == 35")
	if err != nil {
		t.Fatal(err)
	}
	circuit, err := parser.Compile(eq, []string{"y"})
	if err != nil {
		t.Fatal(err)
	}
	w := make([]*field.Fr, circuit.System.NumVars)
	w[0] = field.FrOne()
	w[circuit.PublicVars["y"]] = field.FrFromUint64(7)
	w[circuit.PrivateVars["x"]] = field.FrFromUint64(5)
	// The single multiplication x*y allocates one anonymous witness,
	// which must be assigned its product value directly.
	for i := 1; i < circuit.System.NumVars; i++ {
		if w[i] == nil {
			w[i] = field.FrFromUint64(35)
		}
	}
	if err := circuit.System.CheckSatisfied(w); err != nil {
		t.Fatalf("fixture witness does not satisfy its own R1CS: %v", err)
	}
	return circuit, w
}

func TestPinocchioProveVerifyRoundTrip(t *testing.T) {
	circuit, w := buildXYWitness(t)
	q := qap.Build(circuit.System)

	pk, vk, err := Setup(q)
	if err != nil {
		t.Fatal(err)
	}

	proof, err := Prove(pk, q, w)
	if err != nil {
		t.Fatal(err)
	}

	public := []*field.Fr{w[circuit.PublicVars["y"]]}
	if err := Verify(vk, public, proof); err != nil {
		t.Fatalf("expected honest proof to verify, got %v", err)
	}
}

func TestPinocchioRejectsCorruptedProof(t *testing.T) {
	circuit, w := buildXYWitness(t)
	q := qap.Build(circuit.System)

	pk, vk, err := Setup(q)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := Prove(pk, q, w)
	if err != nil {
		t.Fatal(err)
	}

	proof.PiA = proof.PiA.Add(bls12381.G1Generator())

	public := []*field.Fr{w[circuit.PublicVars["y"]]}
	if err := Verify(vk, public, proof); err == nil {
		t.Fatal("expected corrupted pi_A to fail verification")
	}
}

func TestPinocchioRejectsWrongPublicInput(t *testing.T) {
	circuit, w := buildXYWitness(t)
	q := qap.Build(circuit.System)

	pk, vk, err := Setup(q)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := Prove(pk, q, w)
	if err != nil {
		t.Fatal(err)
	}

	wrongPublic := []*field.Fr{field.FrFromUint64(8)}
	if err := Verify(vk, wrongPublic, proof); err == nil {
		t.Fatal("expected mismatched public input to fail verification")
	}
}

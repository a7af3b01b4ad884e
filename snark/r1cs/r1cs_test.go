package r1cs

import (
	"errors"
	"testing"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark"
)

// buildMultiplyByFive builds x*5 == y as a single-row system: public y,
// private x, and no anonymous witness (the row is (5x)*1 = y).
func buildMultiplyByFive() (*System, int, int) {
	sys := NewSystem(1)
	y := sys.AllocVar("y")
	x := sys.AllocVar("x")
	sys.AddConstraint(
		LinearCombination{{Index: x, Coefficient: field.FrFromUint64(5)}},
		LinearCombination{{Index: 0, Coefficient: field.FrOne()}},
		LinearCombination{{Index: y, Coefficient: field.FrOne()}},
	)
	return sys, y, x
}

func TestCheckSatisfiedAcceptsValidWitness(t *testing.T) {
	sys, y, x := buildMultiplyByFive()
	w := make([]*field.Fr, sys.NumVars)
	w[0] = field.FrOne()
	w[y] = field.FrFromUint64(35)
	w[x] = field.FrFromUint64(7)

	if err := sys.CheckSatisfied(w); err != nil {
		t.Fatalf("expected satisfied witness to pass: %v", err)
	}
}

func TestCheckSatisfiedRejectsInvalidWitness(t *testing.T) {
	sys, y, x := buildMultiplyByFive()
	w := make([]*field.Fr, sys.NumVars)
	w[0] = field.FrOne()
	w[y] = field.FrFromUint64(36)
	w[x] = field.FrFromUint64(7)

	err := sys.CheckSatisfied(w)
	if err == nil {
		t.Fatal("expected unsatisfied witness to fail")
	}
	if !errors.Is(err, snark.ErrUnsatisfiedConstraint) {
		t.Errorf("expected ErrUnsatisfiedConstraint, got %v", err)
	}
}

func TestCheckSatisfiedRejectsWrongWitnessSize(t *testing.T) {
	sys, _, _ := buildMultiplyByFive()
	if err := sys.CheckSatisfied([]*field.Fr{field.FrOne()}); err == nil {
		t.Fatal("expected witness-size mismatch to fail")
	}
}

func TestColumnAtReturnsZeroForAbsentIndex(t *testing.T) {
	lc := LinearCombination{{Index: 3, Coefficient: field.FrFromUint64(9)}}
	if !ColumnAt(lc, 7).IsZero() {
		t.Error("expected zero coefficient for an index not present in the combination")
	}
	if !ColumnAt(lc, 3).Equal(field.FrFromUint64(9)) {
		t.Error("expected the stored coefficient for a present index")
	}
}

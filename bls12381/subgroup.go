package bls12381

import "github.com/wyf-zk/zksnark-core/field"

// InSubgroupG1 checks [r]P == infinity.
func InSubgroupG1(p *G1) bool {
	if p.IsInfinity() {
		return true
	}
	return p.ScalarMul(field.FrModulus).IsInfinity()
}

// InSubgroupG2 checks [r]P == infinity. The endomorphism-based test
// psi(P) == [x]P is faster but needs a precomputed twist automorphism
// constant that is easy to get subtly wrong without a way to check it
// against test vectors here, so this toolkit takes the naive check the
// spec allows as a fallback and uses it unconditionally.
func InSubgroupG2(p *G2) bool {
	if p.IsInfinity() {
		return true
	}
	return p.ScalarMul(field.FrModulus).IsInfinity()
}

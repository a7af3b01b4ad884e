// Package field implements the prime finite fields F_r and F_q that the
// rest of the toolkit builds on: F_r is the BLS12-381 scalar field used by
// the constraint system, QAP, and Bulletproofs; F_q is the BLS12-381 base
// field that coordinates of G1 live in and that the extension tower in
// package tower is built over.
package field

// Elem is the operation set every field element in this toolkit exposes,
// regardless of which prime or extension degree backs it. curve.Point is
// written against this interface so the same Jacobian-coordinate code
// works for G1 (over Fq) and G2 (over an Fq2 implementing Elem).
type Elem interface {
	Add(Elem) Elem
	Sub(Elem) Elem
	Mul(Elem) Elem
	Neg() Elem
	Square() Elem
	Inverse() (Elem, error)
	IsZero() bool
	Equal(Elem) bool
}

// Field is a factory for the distinguished zero and one elements of a
// particular Elem implementation. curve.Curve holds one of these instead
// of importing a concrete field package, which is what lets curve stay
// independent of Fq and Fq2.
type Field interface {
	Zero() Elem
	One() Elem
}

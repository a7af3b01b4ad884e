// Package snark holds the error taxonomy shared by the parser, r1cs,
// qap, and pinocchio packages.
package snark

import (
	"errors"
	"strconv"
)

// ParseError reports a malformed equation, carrying the character (rune)
// offset of the offending token.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return "snark: parse error at " + strconv.Itoa(e.Pos) + ": " + e.Message
}

// ErrUnsatisfiedConstraint is returned when a witness fails an R1CS row,
// or when the QAP quotient polynomial has a nonzero remainder.
var ErrUnsatisfiedConstraint = errors.New("snark: unsatisfied constraint")

// ErrVerificationFailed is returned when a Pinocchio pairing check fails.
// The Bulletproofs verifiers (IPAVerify, VerifyRange) do not return it:
// they report a failed check as a false result with a nil error.
var ErrVerificationFailed = errors.New("snark: verification failed")

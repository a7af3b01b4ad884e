package bls12381

import "errors"

// ErrNotOnCurve is returned when a deserialized point fails the curve
// equation (or, for compressed encodings, when x has no square root).
var ErrNotOnCurve = errors.New("bls12381: point not on curve")

// ErrNotInSubgroup names a point that is on the curve but outside the
// prime-order subgroup. No function in this package returns it:
// DeserializeG1 and DeserializeG2 do not check subgroup membership, and
// InSubgroupG1/InSubgroupG2 report membership as a bool.
var ErrNotInSubgroup = errors.New("bls12381: point not in subgroup")

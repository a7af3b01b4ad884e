package bls12381

// Compressed point encoding per draft-irtf-cfrg-bls-signature: the top
// three bits of the first byte are flags (compression, infinity, sign);
// the remaining bits hold the x coordinate, big-endian. G1 is 48 bytes,
// G2 is 96 bytes (Fq2's own c1||c0 byte order, per field encoding).

import (
	"fmt"
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/tower"
)

const (
	compressedFlag = 0x80
	infinityFlag   = 0x40
	signFlag       = 0x20
	flagMask       = 0xe0
)

// sgn0Fq reports whether y counts as "negative" for the sign flag: the
// BLS encoding convention treats y as negative when y > p - y (i.e.
// y's canonical residue is in the upper half of the field).
func sgn0Fq(y *field.Fq) bool {
	return y.BigInt().Cmp(fqHalf) > 0
}

var fqHalf = new(big.Int).Rsh(field.FqModulus, 1)

// SerializeG1 encodes p in 48-byte compressed form.
func SerializeG1(p *G1) ([48]byte, error) {
	var out [48]byte
	if p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out, nil
	}
	x, y, err := p.AffineFq()
	if err != nil {
		return out, err
	}
	xb := x.Bytes()
	copy(out[:], xb[:])
	out[0] |= compressedFlag
	if sgn0Fq(y) {
		out[0] |= signFlag
	}
	return out, nil
}

// DeserializeG1 decodes a 48-byte compressed G1 encoding, recomputing y
// from x and the curve equation and choosing the root whose sign matches
// the sign bit. It does not check subgroup membership.
func DeserializeG1(b []byte) (*G1, error) {
	if len(b) != 48 {
		return nil, fmt.Errorf("%w: G1 encoding must be 48 bytes, got %d", field.ErrDomain, len(b))
	}
	flags := b[0] & flagMask
	if flags&compressedFlag == 0 {
		return nil, fmt.Errorf("%w: uncompressed G1 encoding not supported", field.ErrDomain)
	}
	if flags&infinityFlag != 0 {
		return G1Infinity(), nil
	}
	var xb [48]byte
	copy(xb[:], b)
	xb[0] &^= flagMask
	x, err := field.FqFromBytes(xb[:])
	if err != nil {
		return nil, err
	}
	rhs := x.Square().(*field.Fq).Mul(x).(*field.Fq).Add(g1B).(*field.Fq)
	y, ok := rhs.Sqrt()
	if !ok {
		return nil, fmt.Errorf("%w: x has no square root, point not on curve", ErrNotOnCurve)
	}
	wantSign := flags&signFlag != 0
	if sgn0Fq(y) != wantSign {
		y = y.Neg().(*field.Fq)
	}
	return G1FromAffine(x, y), nil
}

// SerializeG2 encodes p in 96-byte compressed form: flags live in the
// top byte of the c1 half (the same half Fq2.Bytes places first).
func SerializeG2(p *G2) ([96]byte, error) {
	var out [96]byte
	if p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out, nil
	}
	x, y, err := p.AffineFq2()
	if err != nil {
		return out, err
	}
	xb := x.Bytes()
	copy(out[:], xb[:])
	out[0] |= compressedFlag
	if sgn0Fq2(y) {
		out[0] |= signFlag
	}
	return out, nil
}

func DeserializeG2(b []byte) (*G2, error) {
	if len(b) != 96 {
		return nil, fmt.Errorf("%w: G2 encoding must be 96 bytes, got %d", field.ErrDomain, len(b))
	}
	flags := b[0] & flagMask
	if flags&compressedFlag == 0 {
		return nil, fmt.Errorf("%w: uncompressed G2 encoding not supported", field.ErrDomain)
	}
	if flags&infinityFlag != 0 {
		return G2Infinity(), nil
	}
	var xb [96]byte
	copy(xb[:], b)
	xb[0] &^= flagMask
	x, err := tower.Fq2FromBytes(xb[:])
	if err != nil {
		return nil, err
	}
	rhs := x.Square().(*tower.Fq2).Mul(x).(*tower.Fq2).Add(g2B).(*tower.Fq2)
	y, ok := rhs.Sqrt()
	if !ok {
		return nil, fmt.Errorf("%w: x has no square root, point not on curve", ErrNotOnCurve)
	}
	wantSign := flags&signFlag != 0
	if sgn0Fq2(y) != wantSign {
		y = y.Neg().(*tower.Fq2)
	}
	return G2FromAffine(x, y), nil
}

// sgn0Fq2 extends sgn0Fq to Fq2 per the hash-to-curve sign convention:
// sign(c0 + c1 u) = sign(c1) if c1 != 0, else sign(c0).
func sgn0Fq2(y *tower.Fq2) bool {
	if !y.C1.IsZero() {
		return sgn0Fq(y.C1)
	}
	return sgn0Fq(y.C0)
}

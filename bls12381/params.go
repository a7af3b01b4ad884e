// Package bls12381 wires the generic field, tower, and curve packages
// into the concrete BLS12-381 pairing: G1 over F_q, G2 over F_q2, the
// optimal ate pairing into F_q12, and the wire-format serialization the
// rest of the toolkit (the Pinocchio SNARK and Bulletproofs) builds on.
package bls12381

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/tower"
)

// X holds the absolute value of the BLS12-381 curve parameter x (x itself
// is negative); its bits drive the Miller loop bit schedule.
var X, _ = new(big.Int).SetString("d201000000010000", 16)

// g1B is the G1 curve coefficient, b=4.
var g1B = field.FqFromUint64(4)

// g2B is the G2 twist coefficient, b' = 4(1+u).
var g2B = tower.NewFq2(field.FqFromUint64(4), field.FqFromUint64(4))

var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)

	g2GenXc0, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXc1, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYc0, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYc1, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)
)

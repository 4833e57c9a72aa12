package identity

import (
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
)

// ed25519PublicKeyToCurve25519 converts an Ed25519 public key to its X25519
// (Montgomery form) equivalent by decoding the Edwards point and reading out
// its Montgomery u-coordinate, per spec §4.D step 4.
func ed25519PublicKeyToCurve25519(edPub [32]byte) ([32]byte, error) {
	var out [32]byte

	point, err := new(edwards25519.Point).SetBytes(edPub[:])
	if err != nil {
		return out, errors.New("identity: invalid ed25519 public key")
	}

	mont := point.BytesMontgomery()
	if len(mont) != 32 {
		return out, errors.New("identity: unexpected montgomery point size")
	}
	copy(out[:], mont)

	return out, nil
}

// ed25519SeedToCurve25519Private derives the X25519 private scalar from an
// Ed25519 seed: clamp(SHA-512(seed)[0:32]), per spec §4.B.
func ed25519SeedToCurve25519Private(seed [32]byte) [32]byte {
	h := sha512.Sum512(seed[:])
	var priv [32]byte
	copy(priv[:], h[:32])
	clamp(&priv)
	return priv
}

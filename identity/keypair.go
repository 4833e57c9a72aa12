package identity

import (
	"crypto/ed25519"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"
)

// EdKeyPair is an Ed25519 signing key pair.
type EdKeyPair struct {
	Public  [32]byte
	Private [64]byte // seed || public, the standard Go ed25519 private key form
}

// XKeyPair is an X25519 Diffie-Hellman key pair.
type XKeyPair struct {
	Public  [32]byte
	Private [32]byte
}

// KeyPair bundles the Ed25519 and X25519 sub-keypairs derived from a single
// seed, per spec §3.
type KeyPair struct {
	Ed25519 EdKeyPair
	X25519  XKeyPair
}

// clamp applies the standard X25519 scalar clamp to a 32-byte value.
func clamp(b *[32]byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// KeyPairFromSeed deterministically derives the Ed25519/X25519 key pair
// from a 32-byte seed, per spec §4.B.
func KeyPairFromSeed(seed [32]byte) KeyPair {
	logger := logrus.WithFields(logrus.Fields{
		"function": "KeyPairFromSeed",
		"package":  "identity",
	})
	logger.Debug("deriving key pair from seed")

	edPriv := ed25519.NewKeyFromSeed(seed[:])
	var edPub, edPrivFixed [32]byte
	copy(edPub[:], edPriv[32:])
	copy(edPrivFixed[:], edPriv[:32])

	xPriv := ed25519SeedToCurve25519Private(seed)

	var xPub [32]byte
	curve25519.ScalarBaseMult(&xPub, &xPriv)

	var edPrivArr [64]byte
	copy(edPrivArr[:], edPriv)

	return KeyPair{
		Ed25519: EdKeyPair{Public: edPub, Private: edPrivArr},
		X25519:  XKeyPair{Public: xPub, Private: xPriv},
	}
}

// KeyPairFromMnemonic derives the full key pair from a mnemonic phrase in
// one step.
func KeyPairFromMnemonic(mnemonic string) (KeyPair, error) {
	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPairFromSeed(seed), nil
}

// EdToX25519PublicKey converts an Ed25519 public key to its Curve25519
// (X25519) equivalent, used to recover a message sender's Diffie-Hellman
// identity from their signing key (spec §4.D step 4).
func EdToX25519PublicKey(edPub [32]byte) ([32]byte, error) {
	return ed25519PublicKeyToCurve25519(edPub)
}

// UserID returns the "05"-prefixed hex user identifier for this key pair.
func (k KeyPair) UserID() string {
	return FormatUserID(k.X25519.Public)
}

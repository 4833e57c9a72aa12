package signing

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
)

// BlindingValues holds the scalar and point derived for a given SOGS server
// public key, used to produce blinded signatures and the blinded session
// id exposed to that server.
type BlindingValues struct {
	K         *edwards25519.Scalar // blake2b(server_pk) reduced mod L
	SecretKey *edwards25519.Scalar // k*a mod L
	PublicKey [32]byte             // [SecretKey]B
}

func reduceWideBytes(wide []byte) (*edwards25519.Scalar, error) {
	var buf [64]byte
	copy(buf[:], wide)
	return edwards25519.NewScalar().SetUniformBytes(buf[:])
}

func clampedScalarFromSeed(seed [32]byte) (*edwards25519.Scalar, error) {
	h := sha512.Sum512(seed[:])
	var clamped [32]byte
	copy(clamped[:], h[:32])
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	var wide [64]byte
	copy(wide[:], clamped[:])
	return edwards25519.NewScalar().SetUniformBytes(wide[:])
}

// GetBlindingValues derives the blinding scalar/point for serverPk given the
// signer's Ed25519 seed, mirroring libsodium's blinded-ed25519 construction.
func GetBlindingValues(serverPk [32]byte, edSeed [32]byte) (*BlindingValues, error) {
	digest := blake2b.Sum512(serverPk[:])
	k, err := reduceWideBytes(digest[:])
	if err != nil {
		return nil, err
	}

	a, err := clampedScalarFromSeed(edSeed)
	if err != nil {
		return nil, err
	}

	ka := edwards25519.NewScalar().Multiply(k, a)

	kA := new(edwards25519.Point).ScalarBaseMult(ka)

	var pub [32]byte
	copy(pub[:], kA.Bytes())

	return &BlindingValues{K: k, SecretKey: ka, PublicKey: pub}, nil
}

// BlindedSign produces a 64-byte blinded Ed25519-structured signature
// (R || S) over message, per spec §4.J.
func BlindedSign(message []byte, edSeed [32]byte, blinding *BlindingValues) ([]byte, error) {
	h := sha512.Sum512(edSeed[:])
	hrh := h[32:]

	rDigest := sha512.New()
	rDigest.Write(hrh)
	rDigest.Write(blinding.PublicKey[:])
	rDigest.Write(message)
	r, err := reduceWideBytes(rDigest.Sum(nil))
	if err != nil {
		return nil, err
	}

	R := new(edwards25519.Point).ScalarBaseMult(r)

	hramDigest := sha512.New()
	hramDigest.Write(R.Bytes())
	hramDigest.Write(blinding.PublicKey[:])
	hramDigest.Write(message)
	hram, err := reduceWideBytes(hramDigest.Sum(nil))
	if err != nil {
		return nil, err
	}

	S := edwards25519.NewScalar().MultiplyAdd(hram, blinding.SecretKey, r)

	out := make([]byte, 64)
	copy(out[:32], R.Bytes())
	copy(out[32:], S.Bytes())
	return out, nil
}

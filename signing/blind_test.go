package signing

import (
	"crypto/sha512"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyBlindedSignature independently re-derives the Ed25519 verification
// equation [S]B == R + [H(R||A||m)]A for a blinded signature, confirming
// BlindedSign produced a signature valid under the blinded public key.
func verifyBlindedSignature(t *testing.T, sig []byte, kA [32]byte, message []byte) bool {
	t.Helper()
	require.Len(t, sig, 64)

	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	require.NoError(t, err)

	var sBuf [32]byte
	copy(sBuf[:], sig[32:])
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sBuf[:])
	require.NoError(t, err)

	A, err := new(edwards25519.Point).SetBytes(kA[:])
	require.NoError(t, err)

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(kA[:])
	h.Write(message)
	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	hram, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	require.NoError(t, err)

	lhs := new(edwards25519.Point).ScalarBaseMult(S)

	expected := new(edwards25519.Point).ScalarMult(hram, A)
	expected.Add(expected, R)

	return lhs.Equal(expected) == 1
}

func TestBlindedSignVerifies(t *testing.T) {
	var edSeed [32]byte
	for i := range edSeed {
		edSeed[i] = byte(i + 7)
	}
	var serverPk [32]byte
	for i := range serverPk {
		serverPk[i] = byte(200 - i)
	}

	blinding, err := GetBlindingValues(serverPk, edSeed)
	require.NoError(t, err)

	message := []byte("sogs request body to sign")
	sig, err := BlindedSign(message, edSeed, blinding)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	assert.True(t, verifyBlindedSignature(t, sig, blinding.PublicKey, message))
}

func TestBlindedSignDifferentServersDifferentKeys(t *testing.T) {
	var edSeed [32]byte
	for i := range edSeed {
		edSeed[i] = byte(i + 1)
	}
	var pk1, pk2 [32]byte
	pk1[0] = 1
	pk2[0] = 2

	b1, err := GetBlindingValues(pk1, edSeed)
	require.NoError(t, err)
	b2, err := GetBlindingValues(pk2, edSeed)
	require.NoError(t, err)

	assert.NotEqual(t, b1.PublicKey, b2.PublicKey)
}

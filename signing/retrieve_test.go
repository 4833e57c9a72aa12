package signing

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/opd-ai/session-core/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshKeyPair(t *testing.T) identity.KeyPair {
	t.Helper()
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return identity.KeyPairFromSeed(seed)
}

func TestSignRetrieveNamespaceZeroOmitted(t *testing.T) {
	keys := freshKeyPair(t)
	sig := SignRetrieve(keys, "retrieve", 0, 1700000000000)

	expectedMsg := fmt.Sprintf("retrieve%d", 1700000000000)
	pub := ed25519.PublicKey(keys.Ed25519.Public[:])

	rawSig, err := base64.StdEncoding.DecodeString(sig.Signature)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(pub, []byte(expectedMsg), rawSig))
	assert.Equal(t, fmt.Sprintf("%x", keys.Ed25519.Public[:]), sig.PubkeyEd25519)
}

func TestSignRetrieveNamespaceNonZeroIncluded(t *testing.T) {
	keys := freshKeyPair(t)
	sig := SignRetrieve(keys, "retrieve", 3, 42)

	expectedMsg := "retrieve" + fmt.Sprintf("%d", 3) + fmt.Sprintf("%d", 42)
	pub := ed25519.PublicKey(keys.Ed25519.Public[:])

	rawSig, err := base64.StdEncoding.DecodeString(sig.Signature)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(pub, []byte(expectedMsg), rawSig))
}

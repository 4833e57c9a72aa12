package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairFromMnemonicDeterministic(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)

	kp1, err := KeyPairFromMnemonic(m)
	require.NoError(t, err)

	kp2, err := KeyPairFromMnemonic(m)
	require.NoError(t, err)

	assert.Equal(t, kp1.X25519.Public, kp2.X25519.Public)
	assert.Equal(t, kp1.Ed25519.Public, kp2.Ed25519.Public)
	assert.Equal(t, kp1.UserID(), kp2.UserID())
}

func TestUserIDShape(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)

	kp, err := KeyPairFromMnemonic(m)
	require.NoError(t, err)

	id := kp.UserID()
	assert.Len(t, id, UserIDLength)
	assert.True(t, strings.HasPrefix(id, UserIDPrefix))
	assert.True(t, IsValidUserID(id))
}

func TestEdToX25519PublicKeyRoundTrips(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)

	kp, err := KeyPairFromMnemonic(m)
	require.NoError(t, err)

	derived, err := EdToX25519PublicKey(kp.Ed25519.Public)
	require.NoError(t, err)
	assert.Equal(t, kp.X25519.Public, derived)
}

func TestParseUserIDRejectsBadInput(t *testing.T) {
	_, err := ParseUserID("not-a-user-id")
	assert.Error(t, err)

	_, err = ParseUserID("06" + strings.Repeat("a", 64))
	assert.Error(t, err)
}

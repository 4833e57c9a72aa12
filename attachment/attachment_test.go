package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	plaintext := []byte("this is file content for an attachment")

	enc, err := Encrypt(plaintext, key, iv)
	require.NoError(t, err)

	back, err := Decrypt(enc.Ciphertext, key, enc.Digest)
	require.NoError(t, err)
	assert.Equal(t, plaintext, back)
}

func TestDecryptTamperedCiphertextFails(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	enc, err := Encrypt([]byte("secret payload"), key, iv)
	require.NoError(t, err)

	tampered := make([]byte, len(enc.Ciphertext))
	copy(tampered, enc.Ciphertext)
	tampered[10] ^= 0x01

	_, err = Decrypt(tampered, key, enc.Digest)
	assert.Error(t, err)
}

func TestDecryptWrongDigestFails(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	enc, err := Encrypt([]byte("secret payload"), key, iv)
	require.NoError(t, err)

	var badDigest [32]byte
	_, err = Decrypt(enc.Ciphertext, key, badDigest)
	assert.ErrorIs(t, err, ErrBadDigest)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	enc, err := Encrypt([]byte("secret payload"), key, iv)
	require.NoError(t, err)

	otherKey, err := GenerateKey()
	require.NoError(t, err)

	_, err = Decrypt(enc.Ciphertext, otherKey, enc.Digest)
	assert.ErrorIs(t, err, ErrBadMAC)
}

func TestAddSizePaddingObscuresLength(t *testing.T) {
	small := []byte("x")
	padded := AddSizePadding(small)
	assert.GreaterOrEqual(t, len(padded), 541)

	large := make([]byte, 600)
	padded = AddSizePadding(large)
	assert.GreaterOrEqual(t, len(padded), 600)
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	enc, err := Encrypt(nil, key, iv)
	require.NoError(t, err)

	back, err := Decrypt(enc.Ciphertext, key, enc.Digest)
	require.NoError(t, err)
	assert.Empty(t, back)
}

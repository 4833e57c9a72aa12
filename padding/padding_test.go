package padding

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeARoundTrip(t *testing.T) {
	sizes := []int{0, 1, 15, 16, 17, 127, 128, 255, 256, 511, 512, 1023, 1024, 2000}
	for _, size := range sizes {
		msg := make([]byte, size)
		_, err := rand.Read(msg)
		require.NoError(t, err)

		padded, err := AddPaddingA(msg)
		require.NoError(t, err)

		block := blockSizeForA(size)
		assert.Equal(t, 0, len(padded)%block, "size=%d", size)
		assert.Greater(t, len(padded), size, "size=%d", size)

		back, err := RemovePaddingA(padded)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(msg, back), "size=%d", size)
	}
}

func TestSchemeBRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 159, 160, 161, 319, 320, 1000}
	for _, size := range sizes {
		msg := make([]byte, size)
		_, err := rand.Read(msg)
		require.NoError(t, err)
		// trailing zero bytes in the random payload cannot confuse the
		// terminator scan: it runs from the end and stops at the 0x80
		// terminator, which follows the payload.

		padded := AddPaddingB(msg)
		assert.Equal(t, 0, len(padded)%blockSizeB, "size=%d", size)

		back, err := RemovePaddingB(padded)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(msg, back), "size=%d", size)
	}
}

func TestSchemeBInvalidPadding(t *testing.T) {
	_, err := RemovePaddingB([]byte{0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestAddRemoveDispatch(t *testing.T) {
	msg := []byte("hello world")

	for _, s := range []Scheme{SchemeA, SchemeB} {
		padded, err := Add(s, msg)
		require.NoError(t, err)

		back, err := Remove(s, padded)
		require.NoError(t, err)
		assert.Equal(t, msg, back)
	}
}

func TestLargeMessageUpToTenMiB(t *testing.T) {
	msg := make([]byte, 10*1024*1024)
	_, err := rand.Read(msg)
	require.NoError(t, err)

	padded := AddPaddingB(msg)
	back, err := RemovePaddingB(padded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(msg, back))
}

package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonicWordCount(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)

	fields := strings.Fields(m)
	assert.Len(t, fields, 13)
}

func TestGenerateMnemonicIsConsistent(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)

	seedA, err := SeedFromMnemonic(m)
	require.NoError(t, err)

	seedB, err := SeedFromMnemonic(m)
	require.NoError(t, err)

	assert.Equal(t, seedA, seedB)
}

func TestSeedFromMnemonicWrongWordCount(t *testing.T) {
	_, err := SeedFromMnemonic("only two words")
	assert.ErrorIs(t, err, ErrWordCount)
}

func TestSeedFromMnemonicUnknownWord(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)
	fields := strings.Fields(m)
	fields[0] = "zzznotaword"

	_, err = SeedFromMnemonic(strings.Join(fields, " "))
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestSeedFromMnemonicAcceptsBadChecksum(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)
	fields := strings.Fields(m)

	// Swap the checksum word for an arbitrary different word; decoding
	// should still succeed (with a logged warning), per spec §4.B.
	if fields[12] == englishWords[0] {
		fields[12] = englishWords[1]
	} else {
		fields[12] = englishWords[0]
	}

	_, err = SeedFromMnemonic(strings.Join(fields, " "))
	assert.NoError(t, err)
}

func TestManyGeneratedMnemonicsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		m, err := GenerateMnemonic()
		require.NoError(t, err)
		assert.False(t, seen[m], "mnemonic collision: %s", m)
		seen[m] = true
	}
}

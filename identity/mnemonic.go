package identity

import (
	"crypto/rand"
	"encoding/binary"
	"hash/crc32"
	"strings"

	"github.com/sirupsen/logrus"
)

// prefixLen is the number of leading characters of each word that must
// match; the rest of the word is decorative and not significant to decoding.
const prefixLen = 3

// wordListSize is the length n of the fixed word list.
const wordListSize = len(englishWords)

// trimmedWords caches the prefixLen-character prefix of every word in the
// list, since decode and encode both need to search by prefix repeatedly.
var trimmedWords = func() [wordListSize]string {
	var out [wordListSize]string
	for i, w := range englishWords {
		if len(w) < prefixLen {
			out[i] = w
			continue
		}
		out[i] = w[:prefixLen]
	}
	return out
}()

func indexByPrefix(word string) int {
	if len(word) > prefixLen {
		word = word[:prefixLen]
	}
	for i, p := range trimmedWords {
		if p == word {
			return i
		}
	}
	return -1
}

// decodeMnemonic decodes the words of a mnemonic (without its checksum
// word) into the raw seed bytes described in spec §4.B: each group of
// three words decodes to a little-endian uint32.
func decodeMnemonic(words []string) ([]byte, error) {
	n := uint32(wordListSize)
	out := make([]byte, 0, 4*(len(words)/3))

	for i := 0; i < len(words); i += 3 {
		w1 := indexByPrefix(words[i])
		w2 := indexByPrefix(words[i+1])
		w3 := indexByPrefix(words[i+2])
		if w1 < 0 || w2 < 0 || w3 < 0 {
			return nil, ErrUnknownWord
		}

		u1, u2, u3 := uint32(w1), uint32(w2), uint32(w3)
		x := u1 + n*((n-u1+u2)%n) + n*n*((n-u2+u3)%n)

		if x%n != u1 {
			return nil, ErrMalformed
		}

		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], x)
		out = append(out, buf[:]...)
	}

	return out, nil
}

// checksumIndex computes the index of the expected 13th (checksum) word,
// per spec §4.B: CRC32 of the concatenated 3-character prefixes of the
// first 12 words, modulo the word list size.
func checksumIndex(words []string) int {
	var sb strings.Builder
	for _, w := range words {
		if len(w) > prefixLen {
			sb.WriteString(w[:prefixLen])
		} else {
			sb.WriteString(w)
		}
	}
	sum := crc32.ChecksumIEEE([]byte(sb.String()))
	return int(sum % uint32(wordListSize))
}

// SeedFromMnemonic converts a 12- or 13-word mnemonic phrase into a 32-byte
// seed. A 13th word is treated as a checksum word: a mismatch is logged as
// a warning rather than rejected, per spec §4.B's deliberate compatibility
// relaxation.
func SeedFromMnemonic(mnemonic string) ([32]byte, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "SeedFromMnemonic",
		"package":  "identity",
	})

	fields := strings.Fields(mnemonic)
	if len(fields) != 12 && len(fields) != 13 {
		logger.WithField("word_count", len(fields)).Error("mnemonic has wrong word count")
		return [32]byte{}, ErrWordCount
	}

	words := fields[:12]

	decoded, err := decodeMnemonic(words)
	if err != nil {
		logger.WithField("error", err).Error("failed to decode mnemonic body")
		return [32]byte{}, err
	}

	if len(fields) == 13 {
		expected := checksumIndex(words)
		expectedWord := englishWords[expected]
		got := fields[12]
		prefix := got
		if len(prefix) > prefixLen {
			prefix = prefix[:prefixLen]
		}
		expPrefix := expectedWord
		if len(expPrefix) > prefixLen {
			expPrefix = expPrefix[:prefixLen]
		}
		if prefix != expPrefix {
			logger.WithFields(logrus.Fields{
				"expected_word": expectedWord,
				"got_word":      got,
			}).Warn("mnemonic checksum word mismatch, proceeding anyway")
		}
	}

	// Right-pad the decoded bytes to 32 bytes with zero bytes, matching the
	// hex-string zero-padding described in spec §4.B.
	var seed [32]byte
	copy(seed[:], decoded)

	return seed, nil
}

// GenerateMnemonic creates a fresh random 13-word mnemonic. Unlike naive
// uniform word sampling, it generates entropy and encodes it through the
// inverse of decodeMnemonic so the resulting seed is uniformly random, per
// the Open Question decision recorded in SPEC_FULL.md.
func GenerateMnemonic() (string, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "GenerateMnemonic",
		"package":  "identity",
	})

	n := uint32(wordListSize)
	words := make([]string, 0, 13)

	var entropy [16]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		logger.WithField("error", err).Error("failed to read random entropy")
		return "", err
	}

	for i := 0; i < 4; i++ {
		x := binary.LittleEndian.Uint32(entropy[i*4 : i*4+4])

		w1 := x % n
		y := x / n
		w2 := (y%n + w1) % n
		z := y / n
		w3 := (z + w2) % n

		words = append(words, englishWords[w1], englishWords[w2], englishWords[w3])
	}

	checksumWord := englishWords[checksumIndex(words)]
	words = append(words, checksumWord)

	logger.Debug("generated new mnemonic")

	return strings.Join(words, " "), nil
}

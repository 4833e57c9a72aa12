package codec

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrOddHexLength indicates a hex string with an odd number of characters.
var ErrOddHexLength = errors.New("codec: hex string has odd length")

// ToHex returns the lowercase hexadecimal encoding of data.
//
//export CodecToHex
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hexadecimal string into bytes.
//
//export CodecFromHex
func FromHex(s string) ([]byte, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "FromHex",
		"package":  "codec",
		"length":   len(s),
	})

	if len(s)%2 != 0 {
		logger.WithField("error", ErrOddHexLength).Error("hex decode failed")
		return nil, ErrOddHexLength
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		logger.WithField("error", err).Debug("hex decode failed")
		return nil, err
	}
	return b, nil
}

// ToBase64 returns the standard base64 encoding of data.
//
//export CodecToBase64
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes a standard base64 string into bytes.
//
//export CodecFromBase64
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Concat concatenates any number of byte slices into one allocation.
//
//export CodecConcat
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// StripPrefix removes the given string prefix from a hex-like identifier
// such as a user id's "05" network prefix. It returns the input unchanged
// if the prefix is not present.
//
//export CodecStripPrefix
func StripPrefix(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// ConstantTimeEqual reports whether a and b are identical, using a
// constant-time comparison suitable for verifying MACs and digests.
// Like subtle.ConstantTimeCompare, it returns false immediately when the
// lengths differ, so only the lengths (not the contents) can leak via timing.
//
//export CodecConstantTimeEqual
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

package identity

import (
	"encoding/hex"
	"strings"
)

// UserIDPrefix is the two-ASCII-character network prefix of every session
// user identifier.
const UserIDPrefix = "05"

// UserIDLength is the fixed length of a formatted user id string.
const UserIDLength = 66

// FormatUserID formats an X25519 public key as a "05"-prefixed lowercase
// hex user identifier, per spec §4.B.
func FormatUserID(xPub [32]byte) string {
	return UserIDPrefix + hex.EncodeToString(xPub[:])
}

// ParseUserID validates and decodes a user id string into its X25519
// public key.
func ParseUserID(id string) ([32]byte, error) {
	var out [32]byte

	if len(id) != UserIDLength {
		return out, ErrInvalidUserID
	}
	if !strings.HasPrefix(id, UserIDPrefix) {
		return out, ErrInvalidUserID
	}

	raw, err := hex.DecodeString(id[len(UserIDPrefix):])
	if err != nil || len(raw) != 32 {
		return out, ErrInvalidUserID
	}

	copy(out[:], raw)
	return out, nil
}

// IsValidUserID reports whether id is a structurally valid user identifier.
func IsValidUserID(id string) bool {
	_, err := ParseUserID(id)
	return err == nil
}

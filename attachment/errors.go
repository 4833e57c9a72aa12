package attachment

import "errors"

var (
	// ErrKeyLength indicates the attachment key was not 64 bytes.
	ErrKeyLength = errors.New("attachment: key must be 64 bytes")

	// ErrIVLength indicates the initialization vector was not 16 bytes.
	ErrIVLength = errors.New("attachment: iv must be 16 bytes")

	// ErrTooShort indicates a ciphertext blob too short to contain an
	// IV and MAC.
	ErrTooShort = errors.New("attachment: ciphertext too short")

	// ErrBadMAC indicates HMAC verification failed.
	ErrBadMAC = errors.New("attachment: bad mac")

	// ErrBadDigest indicates SHA-256 digest verification failed.
	ErrBadDigest = errors.New("attachment: bad digest")
)

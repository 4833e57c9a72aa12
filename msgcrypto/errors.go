package msgcrypto

import "errors"

var (
	// ErrMissingIdentity indicates encryption was attempted without a
	// sender key pair.
	ErrMissingIdentity = errors.New("msgcrypto: missing sender identity")

	// ErrInvalidRecipient indicates a malformed recipient public key.
	ErrInvalidRecipient = errors.New("msgcrypto: invalid recipient")

	// ErrBox indicates sealed-box or secretbox opening failed
	// authentication.
	ErrBox = errors.New("msgcrypto: box authentication failed")

	// ErrSignature indicates the embedded signature failed to verify.
	ErrSignature = errors.New("msgcrypto: signature verification failed")

	// ErrPadding indicates padding removal failed.
	ErrPadding = errors.New("msgcrypto: padding removal failed")

	// ErrUnknownType indicates an envelope type this package does not
	// know how to decrypt.
	ErrUnknownType = errors.New("msgcrypto: unknown message type")

	// ErrNoGroupKey indicates none of the keys in a closed-group keyring
	// decrypted and verified the message.
	ErrNoGroupKey = errors.New("msgcrypto: no keyring key matched")
)

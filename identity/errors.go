package identity

import "errors"

var (
	// ErrWordCount indicates the mnemonic did not contain 12 or 13 words.
	ErrWordCount = errors.New("identity: mnemonic must have 12 or 13 words")

	// ErrUnknownWord indicates a word's prefix was not found in the word list.
	ErrUnknownWord = errors.New("identity: unknown word in mnemonic")

	// ErrMalformed indicates the consistency check x mod n == w1 failed.
	ErrMalformed = errors.New("identity: malformed mnemonic")

	// ErrInvalidUserID indicates a user id string failed structural validation.
	ErrInvalidUserID = errors.New("identity: invalid user id")
)

package sessioncore

import "errors"

// ErrAlreadyInitialized is returned by SetMnemonic once a mnemonic has
// already been set, per spec §4.M's authorization state machine.
var ErrAlreadyInitialized = errors.New("session: already initialized")

// ErrNotAuthorized is returned by operations that require SetMnemonic to
// have succeeded first.
var ErrNotAuthorized = errors.New("session: not authorized")

// ErrInvalidRecipient is returned when a send target is not a
// structurally valid user id.
var ErrInvalidRecipient = errors.New("session: invalid recipient id")

package poll

import "errors"

// ErrNotAuthorized indicates Start was called before a keypair was
// established.
var ErrNotAuthorized = errors.New("poll: not authorized")

// ErrAlreadyPolling indicates Start was called while already running.
var ErrAlreadyPolling = errors.New("poll: already polling")

package store

import "errors"

// ErrStoreFailed wraps the last underlying error after retry exhaustion.
var ErrStoreFailed = errors.New("store: failed after retries")

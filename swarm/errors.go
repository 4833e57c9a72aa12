package swarm

import "errors"

// ErrNoSnodes indicates no candidate snodes were available to query.
var ErrNoSnodes = errors.New("swarm: no snodes available")

// ErrFetch wraps the last underlying error after retry exhaustion.
var ErrFetch = errors.New("swarm: fetch failed")

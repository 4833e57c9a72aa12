package discovery

import "errors"

// ErrAllSeedsFailed indicates every configured seed failed to respond with
// a usable snode list.
var ErrAllSeedsFailed = errors.New("discovery: all seeds failed")

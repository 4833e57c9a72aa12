// Package discovery bootstraps the snode pool from the network's seed
// endpoints and caches it for the process lifetime, per spec §4.H.
package discovery

package snode

import "fmt"

// Snode identifies a single storage service node. Equality is by
// (Host, Port), per spec §3.
type Snode struct {
	Host          string
	Port          uint16
	PubkeyX25519  string
	PubkeyEd25519 string
}

// Equal reports whether s and other identify the same snode.
func (s Snode) Equal(other Snode) bool {
	return s.Host == other.Host && s.Port == other.Port
}

// StorageURL returns the HTTPS storage RPC endpoint for s.
func (s Snode) StorageURL() string {
	return fmt.Sprintf("https://%s:%d/storage_rpc/v1", s.Host, s.Port)
}

// Swarm is a non-empty ordered set of snodes collectively responsible for a
// user's messages.
type Swarm struct {
	Snodes []Snode
}

// Len returns the number of snodes in the swarm.
func (sw Swarm) Len() int {
	return len(sw.Snodes)
}

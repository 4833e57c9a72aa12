// Package swarm resolves the set of snodes responsible for a given user
// id, with randomized candidate selection, 421-redirect handling, and
// bounded retry, per spec §4.I.
package swarm

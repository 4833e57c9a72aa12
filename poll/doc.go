// Package poll drives the namespaced retrieve loop: it resolves our swarm,
// issues a batch retrieve across configured namespaces, decrypts and parses
// incoming messages, advances per-namespace cursors, and emits events, per
// spec §4.L.
package poll

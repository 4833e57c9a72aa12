// Package envelope defines the message envelope and content wire types of
// spec §3 and §4.E, builds and parses their length-prefixed binary
// encoding, and wraps/unwraps the websocket-style request frame used when
// storing a message with a snode.
package envelope

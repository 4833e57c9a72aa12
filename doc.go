// Package sessioncore is the public facade of this client library: it owns
// identity, lazily resolves snode and swarm state, and composes discovery,
// signing, storage, and polling into a single Session type.
package sessioncore

// Package msgcrypto implements the message-level cryptography of the
// session protocol: deniable authenticated encryption for one-to-one
// messages (sealed box + detached Ed25519 signature) and symmetric
// encryption for closed-group messages, per spec §4.D.
package msgcrypto

// Package attachment implements the encrypt/upload/download contract for
// message attachments referenced by an envelope.AttachmentPointer: AES-CBC
// encryption with an HMAC-SHA256 authentication tag, keyed by a 64-byte
// attachment key (32-byte AES key || 32-byte MAC key), and a SHA-256 digest
// over the full ciphertext blob used to detect corruption in transit.
package attachment

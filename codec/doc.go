// Package codec implements low-level byte and string encoding primitives
// shared across the session client: hex and base64 conversion, byte
// concatenation, prefix stripping, and constant-time comparison.
package codec

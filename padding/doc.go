// Package padding implements the two length-hiding padding schemes used by
// the session message protocol. Scheme A is block-aligned and
// length-prefixed; Scheme B is a zero-terminated pad. Exactly one scheme
// is used per deployment, selected by the caller; both are fully
// implemented so a conforming client can match either peer generation.
package padding

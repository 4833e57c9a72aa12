package padding

import "errors"

var errUnknownScheme = errors.New("padding: unknown scheme")

// Scheme identifies which length-hiding padding scheme is active for a
// deployment. Exactly one is used on the wire at a time; a negotiation
// mechanism between schemes is out of scope (spec §9 Open Questions).
type Scheme int

const (
	// SchemeA is the block-aligned, length-prefixed scheme.
	SchemeA Scheme = iota
	// SchemeB is the zero-terminated scheme.
	SchemeB
)

// Add pads plaintext using the given scheme.
func Add(scheme Scheme, plaintext []byte) ([]byte, error) {
	switch scheme {
	case SchemeA:
		return AddPaddingA(plaintext)
	case SchemeB:
		return AddPaddingB(plaintext), nil
	default:
		return nil, errUnknownScheme
	}
}

// Remove strips padding from a buffer padded with the given scheme.
func Remove(scheme Scheme, padded []byte) ([]byte, error) {
	switch scheme {
	case SchemeA:
		return RemovePaddingA(padded)
	case SchemeB:
		return RemovePaddingB(padded)
	default:
		return nil, errUnknownScheme
	}
}

package padding

import "errors"

// blockSizeB is the fixed alignment block size for the terminator scheme.
const blockSizeB = 160

// terminatorByte marks the start of the padding region.
const terminatorByte = 0x80

// ErrInvalidPadding indicates a Scheme B buffer with no terminator byte.
var ErrInvalidPadding = errors.New("padding: invalid scheme B padding")

// AddPaddingB appends a 0x80 terminator followed by zero bytes until the
// total length is a multiple of 160, per spec §4.C.
func AddPaddingB(plaintext []byte) []byte {
	withTerminator := len(plaintext) + 1
	target := withTerminator
	if rem := withTerminator % blockSizeB; rem != 0 {
		target += blockSizeB - rem
	}

	out := make([]byte, target)
	copy(out, plaintext)
	out[len(plaintext)] = terminatorByte
	return out
}

// RemovePaddingB scans from the end of a Scheme B padded buffer for the
// 0x80 terminator and truncates there.
func RemovePaddingB(padded []byte) ([]byte, error) {
	for i := len(padded) - 1; i >= 0; i-- {
		switch padded[i] {
		case terminatorByte:
			return padded[:i], nil
		case 0x00:
			continue
		default:
			return nil, ErrInvalidPadding
		}
	}
	return nil, ErrInvalidPadding
}

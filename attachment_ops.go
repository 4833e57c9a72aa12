package sessioncore

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/opd-ai/session-core/attachment"
	"github.com/opd-ai/session-core/envelope"
)

// PreparedAttachment bundles the ciphertext blob a caller must upload out
// of band with the AttachmentPointer to embed in an outgoing DataMessage.
type PreparedAttachment struct {
	Pointer    envelope.AttachmentPointer
	Ciphertext []byte
}

// PrepareAttachment encrypts plaintext with a fresh random key and IV,
// size-obscures it first, and returns the resulting AttachmentPointer
// (with url left for the caller to fill in after uploading Ciphertext) per
// spec §8's attachment round-trip invariant. The pointer's id is a
// freshly generated uuid; callers don't need to come up with their own.
func PrepareAttachment(plaintext []byte, fileName, mimeType string) (*PreparedAttachment, error) {
	key, err := attachment.GenerateKey()
	if err != nil {
		return nil, err
	}
	iv, err := attachment.GenerateIV()
	if err != nil {
		return nil, err
	}

	padded := attachment.AddSizePadding(plaintext)
	enc, err := attachment.Encrypt(padded, key, iv)
	if err != nil {
		return nil, err
	}

	pointer := envelope.AttachmentPointer{
		ID:       uuid.NewString(),
		Size:     uint64(len(plaintext)),
		Key:      key,
		IV:       iv,
		Digest:   hex.EncodeToString(enc.Digest[:]),
		FileName: fileName,
		MimeType: mimeType,
	}

	return &PreparedAttachment{Pointer: pointer, Ciphertext: enc.Ciphertext}, nil
}

// OpenAttachment decrypts a downloaded ciphertext blob against the key, iv,
// and digest recorded in pointer, and strips the trailing zero padding
// added by PrepareAttachment back to the original size.
func OpenAttachment(pointer envelope.AttachmentPointer, ciphertext []byte) ([]byte, error) {
	wantDigest, err := hex.DecodeString(pointer.Digest)
	if err != nil || len(wantDigest) != sha256.Size {
		return nil, attachment.ErrBadDigest
	}
	var digest [32]byte
	copy(digest[:], wantDigest)

	padded, err := attachment.Decrypt(ciphertext, pointer.Key, digest)
	if err != nil {
		return nil, err
	}
	if uint64(len(padded)) < pointer.Size {
		return padded, nil
	}
	return padded[:pointer.Size], nil
}

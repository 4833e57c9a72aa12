package msgcrypto

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/box"
)

// sealedBoxNonce derives the deterministic nonce used by the anonymous
// sealed-box construction: BLAKE2b-192 of the ephemeral and recipient
// public keys concatenated, matching libsodium's crypto_box_seal.
func sealedBoxNonce(ephemeralPub, recipientPub [32]byte) ([24]byte, error) {
	var nonce [24]byte

	h, err := blake2b.New(24, nil)
	if err != nil {
		return nonce, err
	}
	h.Write(ephemeralPub[:])
	h.Write(recipientPub[:])
	copy(nonce[:], h.Sum(nil))

	return nonce, nil
}

// SealAnonymous encrypts message for recipientPub using an ephemeral key
// pair the caller never sees again, providing anonymous, authenticated
// (against the ephemeral key) encryption. The output is
// ephemeral_pub || box_ciphertext.
func SealAnonymous(message []byte, recipientPub [32]byte) ([]byte, error) {
	ephPub, ephPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	nonce, err := sealedBoxNonce(*ephPub, recipientPub)
	if err != nil {
		return nil, err
	}

	sealed := box.Seal(nil, message, &nonce, &recipientPub, ephPriv)

	out := make([]byte, 0, 32+len(sealed))
	out = append(out, ephPub[:]...)
	out = append(out, sealed...)
	return out, nil
}

// OpenAnonymous decrypts a sealed-box ciphertext produced by SealAnonymous.
func OpenAnonymous(ciphertext []byte, recipientPub, recipientPriv [32]byte) ([]byte, error) {
	if len(ciphertext) < 32 {
		return nil, ErrBox
	}

	var ephPub [32]byte
	copy(ephPub[:], ciphertext[:32])

	nonce, err := sealedBoxNonce(ephPub, recipientPub)
	if err != nil {
		return nil, err
	}

	plain, ok := box.Open(nil, ciphertext[32:], &nonce, &ephPub, &recipientPriv)
	if !ok {
		return nil, ErrBox
	}
	return plain, nil
}

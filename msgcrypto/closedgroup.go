package msgcrypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/opd-ai/session-core/codec"
	"github.com/opd-ai/session-core/identity"
	"golang.org/x/crypto/nacl/secretbox"
)

// EncryptClosedGroup implements the CLOSED_GROUP_MESSAGE encryption of
// spec §4.D: the plaintext is signed by the sender, bundled with the
// sender's public key and signature, then symmetrically encrypted with the
// shared group key.
func EncryptClosedGroup(sender identity.KeyPair, groupKey [32]byte, plaintext []byte) ([]byte, error) {
	signature := ed25519.Sign(sender.Ed25519.Private[:], plaintext)

	payload := codec.Concat(sender.Ed25519.Public[:], signature, plaintext)

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}

	sealed := secretbox.Seal(nil, payload, &nonce, &groupKey)

	out := make([]byte, 0, 24+len(sealed))
	out = append(out, nonce[:]...)
	out = append(out, sealed...)
	return out, nil
}

// DecryptedClosedGroup is the result of a successful DecryptClosedGroup call.
type DecryptedClosedGroup struct {
	Plaintext   []byte
	SenderEdPub [32]byte
}

// decryptClosedGroupWithKey attempts to decrypt and verify ciphertext using
// a single candidate group key.
func decryptClosedGroupWithKey(groupKey [32]byte, ciphertext []byte) (*DecryptedClosedGroup, error) {
	if len(ciphertext) < 24 {
		return nil, ErrBox
	}

	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	payload, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &groupKey)
	if !ok {
		return nil, ErrBox
	}

	const pubLen = 32
	const sigLen = ed25519.SignatureSize
	if len(payload) < pubLen+sigLen {
		return nil, ErrSignature
	}

	var senderEdPub [32]byte
	copy(senderEdPub[:], payload[:pubLen])
	signature := payload[pubLen : pubLen+sigLen]
	plaintext := payload[pubLen+sigLen:]

	if !ed25519.Verify(senderEdPub[:], plaintext, signature) {
		return nil, ErrSignature
	}

	plainCopy := make([]byte, len(plaintext))
	copy(plainCopy, plaintext)

	return &DecryptedClosedGroup{Plaintext: plainCopy, SenderEdPub: senderEdPub}, nil
}

// DecryptClosedGroup reverses EncryptClosedGroup against a single group
// key.
func DecryptClosedGroup(groupKey [32]byte, ciphertext []byte) (*DecryptedClosedGroup, error) {
	return decryptClosedGroupWithKey(groupKey, ciphertext)
}

// DecryptClosedGroupKeyring tries every key in a keyring (successive group
// epochs) and succeeds if any one decrypts and verifies the message, per
// spec §4.D.
func DecryptClosedGroupKeyring(keyring [][32]byte, ciphertext []byte) (*DecryptedClosedGroup, error) {
	for _, key := range keyring {
		result, err := decryptClosedGroupWithKey(key, ciphertext)
		if err == nil {
			return result, nil
		}
	}
	return nil, ErrNoGroupKey
}

package msgcrypto

import (
	"crypto/ed25519"

	"github.com/opd-ai/session-core/codec"
	"github.com/opd-ai/session-core/identity"
	"github.com/sirupsen/logrus"
)

// EncryptOneToOne implements the SESSION_MESSAGE encryption of spec §4.D:
// the plaintext is signed together with the sender and recipient keys,
// bundled with the signature and sender public key, then sealed anonymously
// to the recipient's X25519 public key.
func EncryptOneToOne(sender identity.KeyPair, recipientXPub [32]byte, plaintext []byte) ([]byte, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "EncryptOneToOne",
		"package":  "msgcrypto",
	})

	verif := codec.Concat(plaintext, sender.Ed25519.Public[:], recipientXPub[:])
	signature := ed25519.Sign(sender.Ed25519.Private[:], verif)

	inner := codec.Concat(plaintext, sender.Ed25519.Public[:], signature)

	ciphertext, err := SealAnonymous(inner, recipientXPub)
	if err != nil {
		logger.WithField("error", err).Error("sealed box encryption failed")
		return nil, err
	}

	logger.WithField("ciphertext_len", len(ciphertext)).Debug("one-to-one message encrypted")
	return ciphertext, nil
}

// DecryptedOneToOne is the result of a successful DecryptOneToOne call.
type DecryptedOneToOne struct {
	Plaintext   []byte
	SenderXPub  [32]byte
	SenderEdPub [32]byte
}

// DecryptOneToOne reverses EncryptOneToOne, verifying the embedded
// signature and recovering the authenticated sender identity.
func DecryptOneToOne(recipient identity.KeyPair, ciphertext []byte) (*DecryptedOneToOne, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "DecryptOneToOne",
		"package":  "msgcrypto",
	})

	inner, err := OpenAnonymous(ciphertext, recipient.X25519.Public, recipient.X25519.Private)
	if err != nil {
		logger.WithField("error", err).Debug("sealed box decryption failed")
		return nil, ErrBox
	}

	const sigLen = ed25519.SignatureSize
	const pubLen = 32
	if len(inner) < sigLen+pubLen {
		return nil, ErrSignature
	}

	signature := inner[len(inner)-sigLen:]
	senderEdPub32 := inner[len(inner)-sigLen-pubLen : len(inner)-sigLen]
	plaintext := inner[:len(inner)-sigLen-pubLen]

	var senderEdPub [32]byte
	copy(senderEdPub[:], senderEdPub32)

	verif := codec.Concat(plaintext, senderEdPub[:], recipient.X25519.Public[:])
	if !ed25519.Verify(senderEdPub[:], verif, signature) {
		logger.Warn("signature verification failed")
		return nil, ErrSignature
	}

	senderXPub, err := identity.EdToX25519PublicKey(senderEdPub)
	if err != nil {
		logger.WithField("error", err).Error("failed to derive sender x25519 identity")
		return nil, err
	}

	plainCopy := make([]byte, len(plaintext))
	copy(plainCopy, plaintext)

	return &DecryptedOneToOne{
		Plaintext:   plainCopy,
		SenderXPub:  senderXPub,
		SenderEdPub: senderEdPub,
	}, nil
}

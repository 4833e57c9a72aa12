package attachment

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"math"

	"github.com/opd-ai/session-core/codec"
	"github.com/sirupsen/logrus"
)

// KeySize is the length of an attachment key: 32 bytes of AES key followed
// by 32 bytes of HMAC key.
const KeySize = 64

// IVSize is the length of the AES-CBC initialization vector.
const IVSize = 16

// MaxFileSizeBytes bounds how large a size-obscured attachment payload is
// allowed to grow to.
const MaxFileSizeBytes = 10 * 1000 * 1000

// Encrypted is the result of encrypting an attachment: the ciphertext blob
// (iv || aes_cbc_ciphertext || hmac_tag) and its SHA-256 digest.
type Encrypted struct {
	Ciphertext []byte
	Digest     [32]byte
}

// GenerateKey returns a fresh random 64-byte attachment key.
func GenerateKey() ([KeySize]byte, error) {
	var key [KeySize]byte
	_, err := rand.Read(key[:])
	return key, err
}

// GenerateIV returns a fresh random 16-byte initialization vector.
func GenerateIV() ([IVSize]byte, error) {
	var iv [IVSize]byte
	_, err := rand.Read(iv[:])
	return iv, err
}

// paddedSize returns the size-obscuring target length for an attachment of
// the given size: the smallest power of 1.05 at least as large as the
// original length, floored at 541 bytes and capped at MaxFileSizeBytes.
func paddedSize(originalLen int) int {
	n := originalLen
	if n < 1 {
		n = 1
	}
	exp := math.Ceil(math.Log(float64(n)) / math.Log(1.05))
	size := int(math.Pow(1.05, exp))
	if size < 541 {
		size = 541
	}
	if size > MaxFileSizeBytes && originalLen <= MaxFileSizeBytes {
		size = MaxFileSizeBytes
	}
	return size
}

// AddSizePadding pads data with trailing zero bytes to obscure its true
// length, following the attachment padding scheme used for file uploads.
func AddSizePadding(data []byte) []byte {
	target := paddedSize(len(data))
	if target <= len(data) {
		return data
	}
	out := make([]byte, target)
	copy(out, data)
	return out
}

// Encrypt encrypts plaintext with AES-256-CBC under key[:32], authenticates
// iv||ciphertext with HMAC-SHA256 under key[32:], and returns the combined
// blob alongside its SHA-256 digest, per spec's AttachmentPointer contract.
func Encrypt(plaintext []byte, key [KeySize]byte, iv [IVSize]byte) (*Encrypted, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "Encrypt",
		"package":  "attachment",
	})

	aesKey := key[:32]
	macKey := key[32:]

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		logger.WithField("error", err).Error("failed to create AES cipher")
		return nil, err
	}

	padded := pkcs7Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cbc := cipher.NewCBCEncrypter(block, iv[:])
	cbc.CryptBlocks(ciphertext, padded)

	ivAndCiphertext := codec.Concat(iv[:], ciphertext)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ivAndCiphertext)
	tag := mac.Sum(nil)

	blob := codec.Concat(ivAndCiphertext, tag)
	digest := sha256.Sum256(blob)

	logger.WithField("blob_len", len(blob)).Debug("attachment encrypted")

	return &Encrypted{Ciphertext: blob, Digest: digest}, nil
}

// Decrypt reverses Encrypt, verifying the HMAC tag and the SHA-256 digest
// with constant-time comparisons before decrypting.
func Decrypt(blob []byte, key [KeySize]byte, digest [32]byte) ([]byte, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "Decrypt",
		"package":  "attachment",
	})

	if len(blob) < IVSize+sha256.Size {
		return nil, ErrTooShort
	}

	gotDigest := sha256.Sum256(blob)
	if !codec.ConstantTimeEqual(gotDigest[:], digest[:]) {
		logger.Warn("attachment digest mismatch")
		return nil, ErrBadDigest
	}

	macKey := key[32:]
	ivAndCiphertext := blob[:len(blob)-sha256.Size]
	tag := blob[len(blob)-sha256.Size:]

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ivAndCiphertext)
	expected := mac.Sum(nil)
	if !codec.ConstantTimeEqual(expected, tag) {
		logger.Warn("attachment mac mismatch")
		return nil, ErrBadMAC
	}

	aesKey := key[:32]
	iv := ivAndCiphertext[:IVSize]
	ciphertext := ivAndCiphertext[IVSize:]

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%aesBlockSize != 0 {
		return nil, ErrTooShort
	}

	padded := make([]byte, len(ciphertext))
	cbc := cipher.NewCBCDecrypter(block, iv)
	cbc.CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

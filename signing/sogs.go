package signing

import (
	"crypto/ed25519"
	"fmt"

	"github.com/opd-ai/session-core/identity"
	"golang.org/x/crypto/blake2b"
)

// SOGSRequest holds the parameters of a request signed for an open-group
// server, per spec §4.J.
type SOGSRequest struct {
	ServerPk  [32]byte
	Timestamp int64 // seconds
	Method    string
	Endpoint  string
	Nonce     [16]byte
	Body      []byte // optional; nil if absent
}

func (r SOGSRequest) bytesToSign() []byte {
	msg := make([]byte, 0, 32+16+32+len(r.Method)+len(r.Endpoint)+64)
	msg = append(msg, r.ServerPk[:]...)
	msg = append(msg, r.Nonce[:]...)
	msg = append(msg, []byte(fmt.Sprintf("%d", r.Timestamp))...)
	msg = append(msg, []byte(r.Method)...)
	msg = append(msg, []byte(r.Endpoint)...)
	if r.Body != nil {
		bodyHash := blake2b.Sum512(r.Body)
		msg = append(msg, bodyHash[:]...)
	}
	return msg
}

// SignUnblinded signs req with the user's own Ed25519 key.
func SignUnblinded(keys identity.KeyPair, req SOGSRequest) []byte {
	priv := ed25519.PrivateKey(keys.Ed25519.Private[:])
	return ed25519.Sign(priv, req.bytesToSign())
}

// SignBlinded signs req with a per-server blinded key derived from the
// user's Ed25519 identity. Go's ed25519 private key format is seed||pub, so
// the seed is keys.Ed25519.Private's first 32 bytes.
func SignBlinded(keys identity.KeyPair, req SOGSRequest) ([]byte, error) {
	edSeed := edSeedOf(keys)
	blinding, err := GetBlindingValues(req.ServerPk, edSeed)
	if err != nil {
		return nil, err
	}
	return BlindedSign(req.bytesToSign(), edSeed, blinding)
}

// BlindedSessionID returns the "15"-prefixed hex blinded session id exposed
// to the server identified by serverPk.
func BlindedSessionID(serverPk [32]byte, keys identity.KeyPair) (string, error) {
	blinding, err := GetBlindingValues(serverPk, edSeedOf(keys))
	if err != nil {
		return "", err
	}
	return "15" + fmt.Sprintf("%x", blinding.PublicKey[:]), nil
}

func edSeedOf(keys identity.KeyPair) [32]byte {
	var seed [32]byte
	copy(seed[:], keys.Ed25519.Private[:32])
	return seed
}

package signing

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/opd-ai/session-core/identity"
)

// RetrieveSignature holds the fields a signed retrieve sub-request submits
// alongside its pubkey.
type RetrieveSignature struct {
	Signature     string // base64
	PubkeyEd25519 string // hex
}

// SignRetrieve signs a snode retrieve request per spec §4.J: the message is
// the ASCII method, optionally followed by namespace (when non-zero),
// followed by the millisecond timestamp.
func SignRetrieve(keys identity.KeyPair, method string, namespace int, timestampMs int64) RetrieveSignature {
	msg := method
	if namespace != 0 {
		msg += fmt.Sprintf("%d", namespace)
	}
	msg += fmt.Sprintf("%d", timestampMs)

	priv := ed25519.PrivateKey(keys.Ed25519.Private[:])
	sig := ed25519.Sign(priv, []byte(msg))

	return RetrieveSignature{
		Signature:     base64.StdEncoding.EncodeToString(sig),
		PubkeyEd25519: fmt.Sprintf("%x", keys.Ed25519.Public[:]),
	}
}

// Package identity converts a 13-word mnemonic phrase into the Ed25519 and
// X25519 key material used throughout the session client, and derives the
// stable textual user identifier from it.
//
// Example:
//
//	kp, err := identity.KeyPairFromMnemonic("... 13 words ...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("user id:", kp.UserID())
package identity

package tokenstore

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const keyPrefix = "storefront:token:"

// StorageKey derives the storage key of a browser session. The raw session
// id never reaches shared storage.
func StorageKey(sessionID string) string {
	sum := blake2b.Sum256([]byte(sessionID))
	return keyPrefix + hex.EncodeToString(sum[:])
}

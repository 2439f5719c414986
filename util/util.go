package util

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var ErrInvalidHash = errors.New("invalid hash")

// ValidateHash checks that s is a 64 character hex encoded 256-bit hash, the
// form the node uses for block hashes and txids.
func ValidateHash(s string) error {
	if len(s) != chainhash.MaxHashStringSize {
		return fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidHash, s, len(s), chainhash.MaxHashStringSize)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("%w: %q is not hex", ErrInvalidHash, s)
	}
	if _, err := chainhash.NewHashFromStr(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return nil
}

// NormalizeHash lowercases and trims a hash string and validates it.
func NormalizeHash(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, ValidateHash(s)
}

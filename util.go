package ripple

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the ledger defines account ids with RIPEMD-160
)

// Sha512Half returns the first 32 bytes of SHA-512(parts...).
func Sha512Half(parts ...[]byte) (half [32]byte) {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	copy(half[:], sum[:32])
	return
}

// Hash160 calculates RIPEMD-160(SHA-256(data)).
func Hash160(data []byte) (hash [20]byte) {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	h.Sum(hash[:0])
	return
}

func uint32Bytes(n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return b
}

// HexBytes marshals as an upper case hex string, the way the ledger prints
// keys and hashes.
type HexBytes []byte

func (h HexBytes) String() string {
	return strings.ToUpper(hex.EncodeToString(h))
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, h)), nil
}

func (h *HexBytes) UnmarshalJSON(data []byte) (err error) {
	decoded, err := DecodeHex(strings.Trim(string(data), `"`))
	if err != nil {
		return
	}
	*h = decoded
	return
}

// DecodeHex accepts upper or lower case hex with an optional 0x prefix.
func DecodeHex(s string) (decoded []byte, err error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	decoded, err = hex.DecodeString(s)
	if err != nil {
		err = errors.Wrapf(err, "invalid hex '%s'", s)
	}
	return
}

package ripple

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const AccountIDSize = 20

// AccountID is the 160 bit identifier behind a classic address.
type AccountID [AccountIDSize]byte

var (
	// AccountZero is the all zero account (rrrrrrrrrrrrrrrrrrrrrhoLvTp).
	AccountZero = AccountID{}
	// AccountOne is used as a placeholder issuer (rrrrrrrrrrrrrrrrrrrrBZbvji).
	AccountOne = AccountID{19: 1}
)

// String returns the classic address, e.g. rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh.
func (a AccountID) String() string {
	return EncodeToken(TokenTypeAccountID, a[:])
}

func (a AccountID) Hex() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

func (a AccountID) IsZero() bool {
	return a == AccountZero
}

func (a AccountID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, a)), nil
}

func (a *AccountID) UnmarshalJSON(data []byte) (err error) {
	parsed, err := ParseAccountID(strings.Trim(string(data), `"`))
	if err != nil {
		return
	}
	*a = parsed
	return
}

// ParseAccountID decodes a classic address.
func ParseAccountID(address string) (id AccountID, err error) {
	payload, err := DecodeToken(TokenTypeAccountID, address)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode address '%s'", address)
		return
	}

	if len(payload) != AccountIDSize {
		err = errors.Wrapf(ErrInvalidLength, "expected a %d byte account id, got %d bytes", AccountIDSize, len(payload))
		return
	}

	copy(id[:], payload)
	return
}

// AccountIDFromPublicKey hashes a 33 byte public key (secp256k1 compressed or
// 0xED prefixed ed25519) into its account id.
func AccountIDFromPublicKey(pub PublicKey) (id AccountID, err error) {
	if _, err = pub.KeyType(); err != nil {
		return
	}
	id = Hash160(pub)
	return
}

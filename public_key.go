package ripple

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	PublicKeySize = 33

	ed25519KeyPrefix = 0xED
)

const (
	KeyTypeSecp256k1 KeyType = "secp256k1"
	KeyTypeEd25519   KeyType = "ed25519"
)

type KeyType string

func (k KeyType) Valid() bool {
	return k == KeyTypeSecp256k1 || k == KeyTypeEd25519
}

func (k KeyType) Validate() (err error) {
	if !k.Valid() {
		err = errors.Wrapf(ErrInvalidKeyType, "'%s'", string(k))
	}
	return
}

// PublicKey is a 33 byte key: a compressed secp256k1 point (0x02/0x03
// prefix) or an ed25519 key behind a 0xED marker byte.
type PublicKey []byte

func (p PublicKey) KeyType() (typ KeyType, err error) {
	if len(p) != PublicKeySize {
		err = errors.Wrapf(ErrInvalidPublicKey, "expected %d bytes, got %d", PublicKeySize, len(p))
		return
	}
	switch p[0] {
	case 0x02, 0x03:
		return KeyTypeSecp256k1, nil
	case ed25519KeyPrefix:
		return KeyTypeEd25519, nil
	}
	err = errors.Wrapf(ErrInvalidPublicKey, "unknown key prefix 0x%02x", p[0])
	return
}

func (p PublicKey) Validate() (err error) {
	_, err = p.KeyType()
	return
}

func (p PublicKey) Hex() string {
	return strings.ToUpper(hex.EncodeToString(p))
}

func (p PublicKey) String() string {
	return p.Hex()
}

// NodePublicString renders the key the way validators are listed, n9....
func (p PublicKey) NodePublicString() string {
	return EncodeToken(TokenTypeNodePublic, p)
}

// AccountPublicString renders the key in its aB... account form.
func (p PublicKey) AccountPublicString() string {
	return EncodeToken(TokenTypeAccountPublic, p)
}

func (p PublicKey) AccountID() (AccountID, error) {
	return AccountIDFromPublicKey(p)
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, p.Hex())), nil
}

func ParseNodePublicKey(s string) (PublicKey, error) {
	return parsePublicKey(TokenTypeNodePublic, s)
}

func ParseAccountPublicKey(s string) (PublicKey, error) {
	return parsePublicKey(TokenTypeAccountPublic, s)
}

func parsePublicKey(typ TokenType, s string) (pub PublicKey, err error) {
	payload, err := DecodeToken(typ, s)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode %s key", typ)
		return
	}
	pub = payload
	if err = pub.Validate(); err != nil {
		return nil, err
	}
	return
}

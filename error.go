package ripple

import (
	"fmt"
)

var (
	ErrInvalidCharacter = fmt.Errorf("invalid base58 character")
	ErrTooShort         = fmt.Errorf("token too short")
	ErrChecksumMismatch = fmt.Errorf("token checksum mismatch")
	ErrTypeMismatch     = fmt.Errorf("token type mismatch")
	ErrUnknownTokenType = fmt.Errorf("unknown token type")
	ErrInvalidLength    = fmt.Errorf("invalid payload length")
	ErrInvalidPublicKey = fmt.Errorf("invalid public key")
	ErrInvalidKeyType   = fmt.Errorf("invalid key type")
	ErrKeyMismatch      = fmt.Errorf("key does not match seed")
)

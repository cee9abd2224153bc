package ripple

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// LedgerAlphabet maps base58 digit values 0-57 to characters. The leading
// 'r' is the zero digit, which is why account addresses start with 'r'.
const LedgerAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// MinTokenSize is the smallest decoded token accepted: a type byte, at least
// one payload byte and the checksum.
const MinTokenSize = 1 + 1 + ChecksumSize

var ledgerAlphabet = base58.NewAlphabet(LedgerAlphabet)

// EncodeToken prefixes payload with the type tag, appends the checksum and
// returns the base58 text. Every leading zero byte becomes a leading 'r'.
func EncodeToken(typ TokenType, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+ChecksumSize)
	buf = append(buf, byte(typ))
	buf = append(buf, payload...)
	sum := Checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.EncodeAlphabet(buf, ledgerAlphabet)
}

// DecodeToken returns the payload of text, failing with ErrInvalidCharacter,
// ErrTooShort, ErrChecksumMismatch or ErrTypeMismatch (in that order of
// precedence).
func DecodeToken(expected TokenType, text string) (payload []byte, err error) {
	typ, payload, err := decodeChecked(text)
	if err != nil {
		return
	}

	if typ != expected {
		err = errors.Wrapf(ErrTypeMismatch, "expected %s (%d), got %s (%d)", expected, byte(expected), typ, byte(typ))
		return nil, err
	}

	return
}

// DecodeAnyToken decodes text without knowing its type in advance and
// reports the type it carries. Tags outside the registry fail with
// ErrUnknownTokenType.
func DecodeAnyToken(text string) (typ TokenType, payload []byte, err error) {
	typ, payload, err = decodeChecked(text)
	if err != nil {
		return
	}

	if err = typ.Validate(); err != nil {
		return typ, nil, err
	}

	return
}

func decodeChecked(text string) (typ TokenType, payload []byte, err error) {
	var raw []byte
	if text != "" {
		raw, err = base58.DecodeAlphabet(text, ledgerAlphabet)
		if err != nil {
			err = errors.Wrapf(ErrInvalidCharacter, "%v", err)
			return
		}
	}

	if len(raw) < MinTokenSize {
		err = errors.Wrapf(ErrTooShort, "decoded %d bytes, need at least %d", len(raw), MinTokenSize)
		return
	}

	body, carried := raw[:len(raw)-ChecksumSize], raw[len(raw)-ChecksumSize:]
	if sum := Checksum(body); string(sum[:]) != string(carried) {
		err = errors.Wrapf(ErrChecksumMismatch, "expected %x, got %x", sum, carried)
		return
	}

	typ = TokenType(body[0])
	payload = make([]byte, len(body)-1)
	copy(payload, body[1:])
	return
}

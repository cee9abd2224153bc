package ripple

import (
	"crypto/sha512"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const SeedSize = 16

// Seed is the 128 bit entropy every key pair is derived from.
type Seed [SeedSize]byte

// SeedFromPassphrase derives a seed the way rippled does for wallet_propose
// and validation_create with a passphrase: the first 16 bytes of SHA-512.
func SeedFromPassphrase(passphrase string) (seed Seed) {
	sum := sha512.Sum512([]byte(passphrase))
	copy(seed[:], sum[:SeedSize])
	return
}

func GenerateSeed(random io.Reader) (seed Seed, err error) {
	if _, err = io.ReadFull(random, seed[:]); err != nil {
		err = errors.Wrap(err, "failed to read seed entropy")
	}
	return
}

func ParseSeed(s string) (seed Seed, err error) {
	payload, err := DecodeToken(TokenTypeFamilySeed, s)
	if err != nil {
		err = errors.Wrap(err, "failed to decode seed")
		return
	}
	if len(payload) != SeedSize {
		err = errors.Wrapf(ErrInvalidLength, "expected a %d byte seed, got %d bytes", SeedSize, len(payload))
		return
	}
	copy(seed[:], payload)
	return
}

func ParseSeedHex(s string) (seed Seed, err error) {
	decoded, err := DecodeHex(s)
	if err != nil {
		return
	}
	if len(decoded) != SeedSize {
		err = errors.Wrapf(ErrInvalidLength, "expected a %d byte seed, got %d bytes", SeedSize, len(decoded))
		return
	}
	copy(seed[:], decoded)
	return
}

// String returns the s... family seed token.
func (s Seed) String() string {
	return EncodeToken(TokenTypeFamilySeed, s[:])
}

func (s Seed) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

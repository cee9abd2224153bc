package ripple

import (
	"crypto/ed25519"
	"math"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
)

// KeyPair is a derived signing key. Private is the 32 byte secret scalar for
// secp256k1 and the 32 byte private seed for ed25519.
type KeyPair struct {
	Type    KeyType
	Public  PublicKey
	Private HexBytes
}

// DeriveKeyPair derives the account key pair for seed, matching
// wallet_propose.
func DeriveKeyPair(seed Seed, typ KeyType) (kp *KeyPair, err error) {
	switch typ {
	case KeyTypeSecp256k1:
		return deriveSecp256k1(seed, false)
	case KeyTypeEd25519:
		return deriveEd25519(seed), nil
	}
	err = typ.Validate()
	return
}

// DeriveNodeKeyPair derives a validator key pair for seed, matching
// validation_create. Validators sign with the secp256k1 root key rather than
// the first account key.
func DeriveNodeKeyPair(seed Seed) (*KeyPair, error) {
	return deriveSecp256k1(seed, true)
}

func (kp *KeyPair) AccountID() (AccountID, error) {
	return AccountIDFromPublicKey(kp.Public)
}

// SecretString encodes the private key as an AccountSecret or NodePrivate
// token.
func (kp *KeyPair) SecretString(typ TokenType) string {
	return EncodeToken(typ, kp.Private)
}

// Sign signs msg. secp256k1 keys produce a DER encoded ECDSA signature over
// Sha512Half(msg); ed25519 keys sign msg itself.
func (kp *KeyPair) Sign(msg []byte) (sig []byte, err error) {
	switch kp.Type {
	case KeyTypeSecp256k1:
		priv, _ := btcec.PrivKeyFromBytes(kp.Private)
		hash := Sha512Half(msg)
		return ecdsa.Sign(priv, hash[:]).Serialize(), nil
	case KeyTypeEd25519:
		if len(kp.Private) != ed25519.SeedSize {
			err = errors.Errorf("expected a %d byte ed25519 private key, got %d bytes", ed25519.SeedSize, len(kp.Private))
			return
		}
		return ed25519.Sign(ed25519.NewKeyFromSeed(kp.Private), msg), nil
	}
	err = kp.Type.Validate()
	return
}

// VerifySignature checks sig against msg for either key type.
func VerifySignature(pub PublicKey, msg, sig []byte) (valid bool, err error) {
	typ, err := pub.KeyType()
	if err != nil {
		return
	}

	if typ == KeyTypeEd25519 {
		return ed25519.Verify(ed25519.PublicKey(pub[1:]), msg, sig), nil
	}

	key, err := btcec.ParsePubKey(pub)
	if err != nil {
		err = errors.Wrapf(ErrInvalidPublicKey, "%v", err)
		return
	}

	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		err = errors.Wrap(err, "failed to parse DER signature")
		return
	}

	hash := Sha512Half(msg)
	return parsed.Verify(hash[:], key), nil
}

func deriveEd25519(seed Seed) *KeyPair {
	private := Sha512Half(seed[:])
	key := ed25519.NewKeyFromSeed(private[:])
	public := append([]byte{ed25519KeyPrefix}, key.Public().(ed25519.PublicKey)...)
	return &KeyPair{
		Type:    KeyTypeEd25519,
		Public:  public,
		Private: private[:],
	}
}

func deriveSecp256k1(seed Seed, root bool) (kp *KeyPair, err error) {
	order := btcec.S256().Params().N

	scalar, err := deriveScalar(seed[:], nil)
	if err != nil {
		return
	}

	if !root {
		_, rootPublic := btcec.PrivKeyFromBytes(scalarBytes(scalar))
		accountIndex := uint32(0)
		intermediate, err2 := deriveScalar(rootPublic.SerializeCompressed(), &accountIndex)
		if err2 != nil {
			return nil, err2
		}
		scalar.Add(scalar, intermediate)
		scalar.Mod(scalar, order)
	}

	private := scalarBytes(scalar)
	_, public := btcec.PrivKeyFromBytes(private)

	return &KeyPair{
		Type:    KeyTypeSecp256k1,
		Public:  public.SerializeCompressed(),
		Private: private,
	}, nil
}

// deriveScalar hashes data (and the optional discriminator) with an
// increasing counter until the result is a valid secp256k1 private scalar.
func deriveScalar(data []byte, discriminator *uint32) (*big.Int, error) {
	order := btcec.S256().Params().N
	for i := uint32(0); i < math.MaxUint32; i++ {
		parts := [][]byte{data}
		if discriminator != nil {
			parts = append(parts, uint32Bytes(*discriminator))
		}
		parts = append(parts, uint32Bytes(i))

		half := Sha512Half(parts...)
		k := new(big.Int).SetBytes(half[:])
		if k.Sign() > 0 && k.Cmp(order) < 0 {
			return k, nil
		}
	}
	return nil, errors.New("unable to derive a valid secp256k1 scalar")
}

func scalarBytes(k *big.Int) []byte {
	return k.FillBytes(make([]byte, 32))
}

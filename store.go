package ripple

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// NodeKeys is the output of `rippled validation_create`.
type NodeKeys struct {
	ValidationKey        string `json:"validation_key"`
	ValidationPrivateKey string `json:"validation_private_key"`
	ValidationPublicKey  string `json:"validation_public_key"`
	ValidationSeed       string `json:"validation_seed"`
}

// NodeKeysFromSeed builds the same key set validation_create would print for
// seed (minus the RFC 1751 word form of the key).
func NodeKeysFromSeed(seed Seed) (keys NodeKeys, err error) {
	kp, err := DeriveNodeKeyPair(seed)
	if err != nil {
		return
	}
	keys = NodeKeys{
		ValidationPrivateKey: kp.SecretString(TokenTypeNodePrivate),
		ValidationPublicKey:  kp.Public.NodePublicString(),
		ValidationSeed:       seed.String(),
	}
	return
}

// ParseNodeKeys accepts validation_create output, either the bare object or
// wrapped in the rpc "result" envelope.
func ParseNodeKeys(data []byte) (keys NodeKeys, err error) {
	obj, err := jsonResult(data)
	if err != nil {
		return
	}
	keys = NodeKeys{
		ValidationKey:        obj.Get("validation_key").String(),
		ValidationPrivateKey: obj.Get("validation_private_key").String(),
		ValidationPublicKey:  obj.Get("validation_public_key").String(),
		ValidationSeed:       obj.Get("validation_seed").String(),
	}
	return
}

func LoadNodeKeys(path string) (keys NodeKeys, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "unable to read node keys file")
		return
	}

	keys, err = ParseNodeKeys(data)
	if err != nil {
		err = errors.Wrapf(err, "unable to parse node keys file %s", path)
		return
	}

	globalLog.Debug().Msgf("read node keys for %s from %s", keys.ValidationPublicKey, path)

	return
}

// PublicKey decodes the validation public key.
func (k NodeKeys) PublicKey() (PublicKey, error) {
	return ParseNodePublicKey(k.ValidationPublicKey)
}

// Validate decodes every populated token against its expected type and, when
// the seed is present, checks that the keys were derived from it.
func (k NodeKeys) Validate() (err error) {
	if k.ValidationPublicKey == "" && k.ValidationSeed == "" {
		return errors.New("node keys need a validation public key or seed")
	}

	var public PublicKey
	if k.ValidationPublicKey != "" {
		if public, err = k.PublicKey(); err != nil {
			return errors.Wrap(err, "validation_public_key")
		}
	}

	var private []byte
	if k.ValidationPrivateKey != "" {
		if private, err = DecodeToken(TokenTypeNodePrivate, k.ValidationPrivateKey); err != nil {
			return errors.Wrap(err, "validation_private_key")
		}
	}

	if k.ValidationSeed == "" {
		return
	}

	seed, err := ParseSeed(k.ValidationSeed)
	if err != nil {
		return errors.Wrap(err, "validation_seed")
	}

	derived, err := DeriveNodeKeyPair(seed)
	if err != nil {
		return
	}

	if public != nil && !bytes.Equal(public, derived.Public) {
		return errors.Wrapf(ErrKeyMismatch, "validation_public_key %s, seed gives %s", k.ValidationPublicKey, derived.Public.NodePublicString())
	}

	if private != nil && !bytes.Equal(private, derived.Private) {
		return errors.Wrap(ErrKeyMismatch, "validation_private_key")
	}

	return
}

// WalletProposal mirrors the fields of `rippled wallet_propose`.
type WalletProposal struct {
	AccountID     string  `json:"account_id"`
	KeyType       KeyType `json:"key_type"`
	MasterSeed    string  `json:"master_seed"`
	MasterSeedHex string  `json:"master_seed_hex"`
	PublicKey     string  `json:"public_key"`
	PublicKeyHex  string  `json:"public_key_hex"`
}

func NewWalletProposal(seed Seed, typ KeyType) (w WalletProposal, err error) {
	kp, err := DeriveKeyPair(seed, typ)
	if err != nil {
		return
	}

	account, err := kp.AccountID()
	if err != nil {
		return
	}

	w = WalletProposal{
		AccountID:     account.String(),
		KeyType:       typ,
		MasterSeed:    seed.String(),
		MasterSeedHex: seed.Hex(),
		PublicKey:     kp.Public.AccountPublicString(),
		PublicKeyHex:  kp.Public.Hex(),
	}
	return
}

func ParseWalletProposal(data []byte) (w WalletProposal, err error) {
	obj, err := jsonResult(data)
	if err != nil {
		return
	}

	w = WalletProposal{
		AccountID:     obj.Get("account_id").String(),
		KeyType:       KeyType(obj.Get("key_type").String()),
		MasterSeed:    obj.Get("master_seed").String(),
		MasterSeedHex: obj.Get("master_seed_hex").String(),
		PublicKey:     obj.Get("public_key").String(),
		PublicKeyHex:  obj.Get("public_key_hex").String(),
	}

	// Older rippled builds omit key_type for secp256k1 wallets.
	if w.KeyType == "" {
		w.KeyType = KeyTypeSecp256k1
	}
	return
}

// Validate re-derives the wallet from its seed and compares every field.
func (w WalletProposal) Validate() (err error) {
	seed, err := ParseSeed(w.MasterSeed)
	if err != nil {
		return errors.Wrap(err, "master_seed")
	}

	expected, err := NewWalletProposal(seed, w.KeyType)
	if err != nil {
		return
	}

	for _, field := range []struct {
		name      string
		got, want string
	}{
		{"account_id", w.AccountID, expected.AccountID},
		{"master_seed_hex", w.MasterSeedHex, expected.MasterSeedHex},
		{"public_key", w.PublicKey, expected.PublicKey},
		{"public_key_hex", w.PublicKeyHex, expected.PublicKeyHex},
	} {
		if field.got != "" && field.got != field.want {
			return errors.Wrapf(ErrKeyMismatch, "%s: got %s, seed gives %s", field.name, field.got, field.want)
		}
	}

	return
}

func SaveWalletProposal(path string, w WalletProposal) (err error) {
	walletJson, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "unable to marshal wallet")
		return
	}

	err = os.WriteFile(path, walletJson, 0o600)
	if err != nil {
		err = errors.Wrap(err, "unable to write wallet to file")
		return
	}

	globalLog.Info().Msgf("wrote wallet %s to file %s", w.AccountID, path)

	return
}

func LoadWalletProposal(path string) (w WalletProposal, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "unable to read wallet file")
		return
	}
	return ParseWalletProposal(data)
}

func jsonResult(data []byte) (obj gjson.Result, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("invalid json")
		return
	}
	obj = gjson.ParseBytes(data)
	if !obj.IsObject() {
		err = errors.New("expected a json object")
		return
	}
	if result := obj.Get("result"); result.IsObject() {
		obj = result
	}
	return
}

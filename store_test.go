package ripple

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validationCreateOutput = `{
  "result": {
    "status": "success",
    "validation_key": "",
    "validation_private_key": "",
    "validation_public_key": "n9KGGaWqcLWHyitJYXLgtY7XakSz4oaGgRvPMUQ4Vpni8T9rWMy5",
    "validation_seed": "shEmJgbQaVKZU5hufLJyAtdgBCqW4"
  }
}`

func TestParseNodeKeys(t *testing.T) {
	keys, err := ParseNodeKeys([]byte(validationCreateOutput))
	require.NoError(t, err)
	assert.Equal(t, "n9KGGaWqcLWHyitJYXLgtY7XakSz4oaGgRvPMUQ4Vpni8T9rWMy5", keys.ValidationPublicKey)
	assert.Equal(t, "shEmJgbQaVKZU5hufLJyAtdgBCqW4", keys.ValidationSeed)
	assert.NoError(t, keys.Validate())

	bare, err := ParseNodeKeys([]byte(`{"validation_public_key":"n9KGGaWqcLWHyitJYXLgtY7XakSz4oaGgRvPMUQ4Vpni8T9rWMy5"}`))
	require.NoError(t, err)
	assert.Equal(t, keys.ValidationPublicKey, bare.ValidationPublicKey)

	_, err = ParseNodeKeys([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseNodeKeys([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestNodeKeys_Validate(t *testing.T) {
	seed := SeedFromPassphrase("validator")
	keys, err := NodeKeysFromSeed(seed)
	require.NoError(t, err)
	require.NoError(t, keys.Validate())

	pub, err := keys.PublicKey()
	require.NoError(t, err)
	assert.Len(t, pub, PublicKeySize)

	mismatched := keys
	mismatched.ValidationPublicKey = "n9LhhwYhd7MciE3ZZwqwWmk911ERz5xpEFrjWdkPgm87qJRRaFdo"
	assert.ErrorIs(t, mismatched.Validate(), ErrKeyMismatch)

	wrongType := keys
	wrongType.ValidationPrivateKey = seed.String()
	assert.ErrorIs(t, wrongType.Validate(), ErrTypeMismatch)

	corrupt := keys
	corrupt.ValidationSeed = "shEmJgbQaVKZU5hufLJyAtdgBCqW5"
	assert.ErrorIs(t, corrupt.Validate(), ErrChecksumMismatch)

	assert.Error(t, NodeKeys{}.Validate())
}

func TestLoadNodeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	require.NoError(t, os.WriteFile(path, []byte(validationCreateOutput), 0o600))

	keys, err := LoadNodeKeys(path)
	require.NoError(t, err)
	assert.Equal(t, "shEmJgbQaVKZU5hufLJyAtdgBCqW4", keys.ValidationSeed)

	_, err = LoadNodeKeys(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestWalletProposal(t *testing.T) {
	w, err := NewWalletProposal(SeedFromPassphrase("masterpassphrase"), KeyTypeSecp256k1)
	require.NoError(t, err)

	assert.Equal(t, WalletProposal{
		AccountID:     "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		KeyType:       KeyTypeSecp256k1,
		MasterSeed:    "snoPBrXtMeMyMHUVTgbuqAfg1SUTb",
		MasterSeedHex: "DEDCE9CE67B451D852FD4E846FCDE31C",
		PublicKey:     "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw",
		PublicKeyHex:  "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
	}, w)
	assert.NoError(t, w.Validate())

	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, SaveWalletProposal(path, w))

	loaded, err := LoadWalletProposal(path)
	require.NoError(t, err)
	assert.Equal(t, w, loaded)

	tampered := w
	tampered.AccountID = AccountOne.String()
	assert.ErrorIs(t, tampered.Validate(), ErrKeyMismatch)
}

func TestParseWalletProposal_DefaultsToSecp256k1(t *testing.T) {
	w, err := ParseWalletProposal([]byte(`{"result":{"account_id":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","master_seed":"snoPBrXtMeMyMHUVTgbuqAfg1SUTb"}}`))
	require.NoError(t, err)
	assert.Equal(t, KeyTypeSecp256k1, w.KeyType)
	assert.NoError(t, w.Validate())

	ed, err := NewWalletProposal(SeedFromPassphrase("masterpassphrase"), KeyTypeEd25519)
	require.NoError(t, err)
	assert.NoError(t, ed.Validate())
	assert.NotEqual(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", ed.AccountID)
}

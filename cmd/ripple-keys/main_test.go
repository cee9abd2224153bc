package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/alexdcox/ripple-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"ripple-keys"}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "--json", "encode", "--type", "accountid", "B5F762798A53D543A014CAF8B297CFF8F2F937E8")
	require.NoError(t, err)

	var r tokenResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", r.Token)
	assert.Equal(t, "AccountID", r.Type)

	out, err = run(t, "decode", "--type", "AccountID", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Contains(t, out, "B5F762798A53D543A014CAF8B297CFF8F2F937E8")

	_, err = run(t, "decode", "--type", "FamilySeed", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	assert.ErrorIs(t, err, ripple.ErrTypeMismatch)

	_, err = run(t, "encode", "--type", "bech32", "00")
	assert.ErrorIs(t, err, ripple.ErrUnknownTokenType)
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw")
	require.NoError(t, err)
	assert.Contains(t, out, "AccountPublic (35)")
	assert.Contains(t, out, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
}

func TestWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	out, err := run(t, "wallet", "--passphrase", "masterpassphrase", "--out", path)
	require.NoError(t, err)

	var w ripple.WalletProposal
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", w.AccountID)

	saved, err := ripple.LoadWalletProposal(path)
	require.NoError(t, err)
	assert.Equal(t, w, saved)

	_, err = run(t, "wallet", "--key-type", "rsa")
	assert.ErrorIs(t, err, ripple.ErrInvalidKeyType)
}

func TestValidatorKeys(t *testing.T) {
	out, err := run(t, "validator-keys", "--passphrase", "validator")
	require.NoError(t, err)

	var keys ripple.NodeKeys
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.NoError(t, keys.Validate())

	_, err = run(t, "validator-keys")
	assert.Error(t, err)
}

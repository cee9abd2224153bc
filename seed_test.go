package ripple

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromPassphrase(t *testing.T) {
	seed := SeedFromPassphrase("masterpassphrase")
	assert.Equal(t, "DEDCE9CE67B451D852FD4E846FCDE31C", seed.Hex())
	assert.Equal(t, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", seed.String())
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("saNSJMEBKisBr6phJtGXUcV85RBZ3")
	require.NoError(t, err)
	assert.Equal(t, "FDDE6A91607445E59C6F7CF07AF7B661", seed.Hex())

	fromHex, err := ParseSeedHex("fdde6a91607445e59c6f7cf07af7b661")
	require.NoError(t, err)
	assert.Equal(t, seed, fromHex)

	_, err = ParseSeed("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = ParseSeed(EncodeToken(TokenTypeFamilySeed, make([]byte, 15)))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = ParseSeedHex("DEDCE9CE")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = ParseSeedHex("not hex")
	assert.Error(t, err)
}

func TestStaticValidatorSeeds(t *testing.T) {
	for _, s := range []string{
		"shEmJgbQaVKZU5hufLJyAtdgBCqW4",
		"sn3Vs66YsbqwQ1etJ5Q2SEXssdr6S",
		"sascZVmiLA4keNfXx1naPbuceeA9q",
		"ssJ6gd6LeBn2AiddUF42W6s6Ud9yR",
		"sp1xJMz9K68gU2JbDuSygbiyweTWj",
	} {
		seed, err := ParseSeed(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, seed.String())
	}
}

func TestGenerateSeed(t *testing.T) {
	a, err := GenerateSeed(rand.Reader)
	require.NoError(t, err)
	b, err := GenerateSeed(rand.Reader)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = GenerateSeed(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)

	parsed, err := ParseSeed(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

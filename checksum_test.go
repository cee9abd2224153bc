package ripple

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleSha256(t *testing.T) {
	empty := DoubleSha256(nil)
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", hex.EncodeToString(empty[:]))

	data := []byte("ledger")
	first := sha256.Sum256(data)
	expected := sha256.Sum256(first[:])
	assert.Equal(t, expected, DoubleSha256(data))
	assert.Equal(t, DoubleSha256(data), DoubleSha256(data), "expected a deterministic digest")
}

func TestChecksum(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02}
	digest := DoubleSha256(data)
	sum := Checksum(data)
	assert.Equal(t, digest[:ChecksumSize], sum[:])

	other := Checksum([]byte{0x00, 0x01, 0x03})
	assert.NotEqual(t, sum, other)
}

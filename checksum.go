package ripple

import (
	"crypto/sha256"
)

const ChecksumSize = 4

// DoubleSha256 returns SHA-256(SHA-256(data)). Each call hashes with its own
// state, so it is safe to call from any number of goroutines.
func DoubleSha256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Checksum returns the four byte prefix of DoubleSha256(data) carried at the
// end of every encoded token.
func Checksum(data []byte) (sum [ChecksumSize]byte) {
	digest := DoubleSha256(data)
	copy(sum[:], digest[:ChecksumSize])
	return
}

/*
Package ripple implements the text encodings used for keys, seeds and account
identifiers on the XRP ledger, along with the key derivation needed to produce
them.

Every ledger token is a one byte type tag followed by a payload and a four byte
double SHA-256 checksum, rendered in the ledger's own base58 alphabet. The
codec rejects tokens that are corrupted, too short or of the wrong type with
distinct errors so that callers can tell a typo from a misplaced secret.

Network transport, the peer protocol and ledger state are deliberately not
part of this package.
*/

package ripple

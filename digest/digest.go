// Package digest provides content fingerprinting for encoded
// MessagePack messages, for callers building a cache or dedup layer
// keyed by message identity.
package digest

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 digest of an encoded MessagePack
// message. Two messages with the same Fingerprint are, outside of hash
// collisions, byte-identical; this does not imply the reverse — two
// value.Value trees that decode unequally may still collide, so
// Fingerprint is a cache key hint, not a substitute for an equality
// check.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString is the string-input analogue of Fingerprint, for
// callers hashing an already-decoded textual representation (e.g. a
// debug dump) rather than raw wire bytes.
func FingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}

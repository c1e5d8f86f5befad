// SPDX-License-Identifier: MIT

package kmer

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// AlphabetSize is the number of distinct values Encode produces.
	AlphabetSize = 4

	// Base is the polynomial base p of the rolling hash; p > AlphabetSize.
	Base uint64 = 5
)

var (
	// ErrBadK indicates a non-positive window length.
	ErrBadK = errors.New("kmer: k must be positive")

	// ErrUnknownScheme indicates an unrecognized hashing scheme.
	ErrUnknownScheme = errors.New("kmer: unknown hash scheme")
)

// Encode maps a symbol byte to [0, AlphabetSize): A→0, C→1, T→2, G→3.
// Any other byte also lands in range; callers rely on value equality
// of keys, not on injectivity over all bytes.
func Encode(c byte) uint64 {
	return uint64(c&6) >> 1
}

// Hasher fingerprints k-length windows of reads.
type Hasher interface {
	// Hash returns the fingerprint of read[pos:pos+k]. Implementations may
	// require pos to advance by one between calls (see Rolling).
	Hash(read string, pos int) uint64

	// Sum fingerprints a single k-length window from scratch.
	Sum(window string) uint64
}

// Scheme selects a Hasher implementation.
type Scheme int

const (
	// SchemeRolling is the O(1)-update polynomial hash (default).
	SchemeRolling Scheme = iota
	// SchemeXXH3 hashes every window with xxh3.
	SchemeXXH3
	// SchemeMurmur3 hashes every window with seeded murmur3.
	SchemeMurmur3
)

// String returns the lower-case name used by ParseScheme.
func (s Scheme) String() string {
	switch s {
	case SchemeRolling:
		return "rolling"
	case SchemeXXH3:
		return "xxh3"
	case SchemeMurmur3:
		return "murmur3"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme resolves a scheme name (case-insensitive).
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rolling":
		return SchemeRolling, nil
	case "xxh3":
		return SchemeXXH3, nil
	case "murmur3", "murmur":
		return SchemeMurmur3, nil
	}

	return 0, fmt.Errorf("kmer: ParseScheme(%q): %w", name, ErrUnknownScheme)
}

// NewHasher returns a fresh Hasher for windows of length k.
func NewHasher(scheme Scheme, k int) (Hasher, error) {
	if k <= 0 {
		return nil, fmt.Errorf("kmer: NewHasher(k=%d): %w", k, ErrBadK)
	}
	switch scheme {
	case SchemeRolling:
		return NewRolling(k), nil
	case SchemeXXH3:
		return &xxh3Hasher{k: k}, nil
	case SchemeMurmur3:
		return &murmurHasher{k: k, seed: murmurSeed}, nil
	}

	return nil, fmt.Errorf("kmer: NewHasher(%s): %w", scheme, ErrUnknownScheme)
}

// Key is a k-mer: a view into some read plus its fingerprint.
// Value shares memory with the read it was cut from, so the read must
// outlive every Key taken from it.
type Key struct {
	Value string
	Hash  uint64
}

// NewKey cuts read[pos:pos+k] and pairs it with hash.
func NewKey(read string, pos, k int, hash uint64) Key {
	return Key{Value: read[pos : pos+k], Hash: hash}
}

// Equal reports value equality. The hash is compared first as a fast reject.
func (a Key) Equal(b Key) bool {
	return a.Hash == b.Hash && a.Value == b.Value
}

// Last returns the trailing symbol of the window.
func (a Key) Last() byte {
	return a.Value[len(a.Value)-1]
}

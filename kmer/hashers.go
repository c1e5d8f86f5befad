package kmer

import (
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// murmurSeed is fixed so fingerprints are stable across runs.
const murmurSeed uint32 = 0x1234

// xxh3Hasher hashes each window independently; calls may come in any order.
type xxh3Hasher struct {
	k int
}

func (h *xxh3Hasher) Hash(read string, pos int) uint64 {
	return xxh3.HashString(read[pos : pos+h.k])
}

func (h *xxh3Hasher) Sum(window string) uint64 {
	return xxh3.HashString(window)
}

// murmurHasher reuses buf to avoid a string→[]byte allocation per window.
type murmurHasher struct {
	k    int
	seed uint32
	buf  []byte
}

func (h *murmurHasher) Hash(read string, pos int) uint64 {
	return h.Sum(read[pos : pos+h.k])
}

func (h *murmurHasher) Sum(window string) uint64 {
	h.buf = append(h.buf[:0], window...)

	return murmur3.Sum64WithSeed(h.buf, h.seed)
}

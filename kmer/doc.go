// Package kmer provides fingerprints and borrowed keys for fixed-length
// windows ("k-mers") of DNA reads.
//
// What:
//
//   - Encode: maps a symbol byte into [0, AlphabetSize) in 2 bits.
//   - Rolling: polynomial rolling hash in base p = Base. The first window of a
//     read is summed from scratch; every following window is derived in O(1)
//     from its predecessor:
//
//     hash' = hash·p − encode(old)·p^k + encode(new)   (mod 2^64)
//
//     encode(old)·p^k is looked up in a table precomputed per symbol.
//   - XXH3 / Murmur3 window hashers: O(k) per window, better dispersion for
//     long k where the polynomial wraps many times.
//   - Key: a window view (substring of the caller's read, never a copy)
//     paired with its fingerprint. Equality is by value.
//
// Contract:
//
//   - Rolling.Hash(read, 0) computes from scratch; Rolling.Hash(read, pos) for
//     pos > 0 requires Hash(read, pos-1) to have been the previous call.
//   - A Hasher is not safe for concurrent use; create one per build.
//
// Complexity:
//
//   - Rolling: O(k) for the first window, O(1) per subsequent window.
//   - XXH3, Murmur3: O(k) per window.
//
// Errors:
//
//   - ErrBadK           k ≤ 0
//   - ErrUnknownScheme  unrecognized Scheme value or name
package kmer

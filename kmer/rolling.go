package kmer

// Rolling is the polynomial rolling hash over windows of length k.
// It keeps the last computed value, so calls for one read must be sequential.
type Rolling struct {
	k    int
	drop [AlphabetSize]uint64 // drop[s] = s·p^k
	last uint64
}

// NewRolling precomputes the per-symbol drop table for window length k.
// k must be positive; NewHasher validates it for callers that need an error.
func NewRolling(k int) *Rolling {
	maxPower := Pow(Base, k)
	r := &Rolling{k: k}
	for s := 1; s < AlphabetSize; s++ {
		r.drop[s] = r.drop[s-1] + maxPower
	}

	return r
}

// K returns the window length.
func (r *Rolling) K() int { return r.k }

// Hash returns the fingerprint of read[pos:pos+k].
// pos == 0 restarts from scratch; otherwise the previous call must have been
// Hash(read, pos-1).
func (r *Rolling) Hash(read string, pos int) uint64 {
	if pos == 0 {
		r.last = Sum(read[:r.k])
	} else {
		r.last = r.next(r.last, read[pos-1], read[pos+r.k-1])
	}

	return r.last
}

// Sum fingerprints window from scratch. It does not touch rolling state.
func (r *Rolling) Sum(window string) uint64 {
	return Sum(window)
}

// next slides the window by one: drops out from the front, appends in.
func (r *Rolling) next(prev uint64, out, in byte) uint64 {
	return prev*Base - r.drop[Encode(out)] + Encode(in)
}

// Sum computes Σ encode(w[j])·p^(len-1-j) mod 2^64 by Horner's rule.
func Sum(window string) uint64 {
	var h uint64
	for i := 0; i < len(window); i++ {
		h = h*Base + Encode(window[i])
	}

	return h
}

// Pow returns x^n mod 2^64 by square-and-multiply.
func Pow(x uint64, n int) uint64 {
	result := uint64(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}

	return result
}

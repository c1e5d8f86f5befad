//go:build !linux

package readset

// adviseSequential is a no-op outside Linux.
func adviseSequential(b []byte) {}

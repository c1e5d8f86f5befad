//go:build linux

package readset

import "golang.org/x/sys/unix"

// adviseSequential hints that the mapping will be scanned front to back.
// Best-effort: errors are ignored.
func adviseSequential(b []byte) {
	_ = unix.Madvise(b, unix.MADV_SEQUENTIAL)
}

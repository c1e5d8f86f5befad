// Package readset loads read collections for assembly.
//
// Input is plain text with one read per line. Blank lines and lines starting
// with '>', '#' or ';' (FASTA headers, comments) are skipped; surrounding
// whitespace and CR line endings are trimmed.
//
// Reads returned by Load are views into a read-only memory mapping of the
// file, not copies. They stay valid until Close, so a Set must outlive every
// graph and assembly built from its reads.
package readset

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// Set is a loaded read collection.
type Set struct {
	// Reads are views into the backing data, in file order.
	Reads []string

	mm mmap.MMap // nil for empty files and FromBytes sets
}

// Load memory-maps path and splits it into reads.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readset: open %s: %w", path, err)
	}
	// The mapping stays valid after the file is closed.
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("readset: stat %s: %w", path, err)
	}
	if st.Size() == 0 {
		return &Set{}, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("readset: mmap %s: %w", path, err)
	}
	adviseSequential(mm)

	data := unsafe.String(&mm[0], len(mm))

	return &Set{Reads: Parse(data), mm: mm}, nil
}

// FromBytes splits b into reads. b is copied once; the Set does not alias it.
func FromBytes(b []byte) *Set {
	return &Set{Reads: Parse(string(b))}
}

// Len returns the number of reads.
func (s *Set) Len() int { return len(s.Reads) }

// Close unmaps the backing file. Reads must not be used afterwards.
func (s *Set) Close() error {
	s.Reads = nil
	if s.mm == nil {
		return nil
	}
	mm := s.mm
	s.mm = nil
	if err := mm.Unmap(); err != nil {
		return fmt.Errorf("readset: unmap: %w", err)
	}

	return nil
}

// Parse splits data into reads. Every read is a substring of data.
func Parse(data string) []string {
	reads := make([]string, 0, strings.Count(data, "\n")+1)
	for len(data) > 0 {
		line := data
		if i := strings.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = ""
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line[0] {
		case '>', '#', ';':
			continue
		}
		reads = append(reads, line)
	}

	return reads
}

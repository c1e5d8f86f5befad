// Command assemble reconstructs a sequence from equal-length reads.
//
//	assemble -k 3 reads.txt
//	printf 'ACTG\nCTGA\nTGAC\n' | assemble -k 3
//
// Reads are one per line; blank lines and lines starting with '>', '#' or
// ';' are ignored. The assembled sequence is written to stdout.
package main

import (
	"bytes"
	"fmt"
	"os"
)

func main() {
	var out, errBuf bytes.Buffer
	code := run(os.Args[1:], os.Stdin, &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}

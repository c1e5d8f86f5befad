package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errBuf bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errBuf)

	return code, out.String(), errBuf.String()
}

func TestRun_Stdin(t *testing.T) {
	code, out, errOut := runWith([]string{"-k", "3"}, "ACTG\nCTGA\nTGAC\n")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "ACTGAC\n", out)
}

func TestRun_FileCoarseWithStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.txt")
	require.NoError(t, os.WriteFile(path, []byte(">r\nGATTAC\nACAGTC\nTCCGGT\n"), 0o600))

	code, out, errOut := runWith([]string{"-k", "2", "-strategy", "coarse", "-hash", "xxh3", "-stats", path}, "")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "GATTACAGTCCGGT\n", out)
	assert.Contains(t, errOut, "reads=3 vertices=4 edges=3 length=14")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := runWith(nil, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "-k must be > 0")

	code, _, _ = runWith([]string{"-k", "3", "-strategy", "medium"}, "")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runWith([]string{"-k", "3", "-hash", "md5"}, "")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runWith([]string{"-k", "3", "a", "b"}, "")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runWith([]string{"-bogus"}, "")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runWith([]string{"-h"}, "")
	assert.Equal(t, exitOK, code)
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runWith([]string{"-k", "2"}, "AAC\nGGT\n")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "not Eulerian-balanced")

	code, _, errOut = runWith([]string{"-k", "2", "-dna"}, "ABAB\n")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "outside alphabet")

	code, _, _ = runWith([]string{"-k", "2", filepath.Join(t.TempDir(), "missing")}, "")
	assert.Equal(t, exitError, code)
}

func TestRun_EmptyInputWarns(t *testing.T) {
	code, out, errOut := runWith([]string{"-k", "3"}, "\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\n", out)
	assert.Contains(t, errOut, "WARN: no reads in input")

	code, _, errOut = runWith([]string{"-k", "3", "-quiet"}, "")
	assert.Equal(t, exitOK, code)
	assert.NotContains(t, errOut, "WARN")
}

// Package fileutil writes output files atomically through a temporary sibling file.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/basics/internal/failure"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// ErrSameFile is returned when the input and the output name the same file.
var ErrSameFile = errors.New("input and output are the same file")

// SameFile reports whether a and b name the same file: equal absolute paths,
// or, when both exist, the same underlying file (hard links, symlinks, bind mounts).
func SameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}

	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(infoA, infoB)
}

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	SrcInfo os.FileInfo
	IsExec  bool
	TmpFile *os.File
	TmpName string
}

// NewTempContext stats the source file and creates a temp file next to outPath.
// Missing parent directories of outPath are not created.
// Caller must defer CleanupOnError.
func NewTempContext(filename, outPath string) (*TempContext, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, failure.NewIO("getting file info for", filename, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, failure.NewIO("creating temporary file for", outPath, err)
	}

	return &TempContext{
		SrcInfo: info,
		IsExec:  info.Mode()&executableBits != 0,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec,errcheck // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec,errcheck // best-effort cleanup
	}
}

// WriteAtomic writes data to outPath via a temporary file and a rename.
// The output is owner read/write, plus the execute bits when the source was executable.
// It returns the size of the written file.
func WriteAtomic(srcPath, outPath string, data []byte, preserveTimestamps bool) (size int64, err error) {
	tc, err := NewTempContext(srcPath, outPath)
	if err != nil {
		return 0, err
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return 0, failure.NewIO("writing output file", outPath, err)
	}

	perm := os.FileMode(ownerReadWrite)
	if tc.IsExec {
		perm |= executableBits
	}

	if err = os.Chmod(tc.TmpName, perm); err != nil {
		return 0, failure.NewIO("setting permissions on", outPath, err)
	}

	if err = tc.TmpFile.Close(); err != nil {
		return 0, failure.NewIO("closing output file", outPath, err)
	}

	if err = os.Rename(tc.TmpName, outPath); err != nil {
		return 0, failure.NewIO("writing output file", outPath, err)
	}

	return FinalizeOutput(outPath, preserveTimestamps, tc.SrcInfo.ModTime())
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, failure.NewIO("preserving timestamps on", outPath, err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, failure.NewIO("stat output", outPath, fmt.Errorf("after rename: %w", err))
	}

	return outInfo.Size(), nil
}

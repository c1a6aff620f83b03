// Package files holds filesystem helpers shared by the batch commands
package files

import (
	"os"
	"path/filepath"

	perr "dashboard/internal/platform/errors"
)

// WriteAtomic writes b to a temp file next to path and renames it into place,
// so readers see either the old file or the complete new one
func WriteAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "create temp in %s", dir)
	}
	name := tmp.Name()
	fail := func(err error, op string) error {
		_ = tmp.Close()
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeIO, "%s %s", op, name)
	}

	if _, err := tmp.Write(b); err != nil {
		return fail(err, "write")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "sync")
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err, "chmod")
	}
	if err := tmp.Close(); err != nil {
		return fail(err, "close")
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeIO, "rename into %s", path)
	}
	return nil
}

// ReadText reads a whole file, mapping a missing file to NotFound
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(b), nil
	case os.IsNotExist(err):
		return "", perr.Wrapf(err, perr.ErrorCodeNotFound, "%s not found", path)
	default:
		return "", perr.Wrapf(err, perr.ErrorCodeIO, "read %s", path)
	}
}

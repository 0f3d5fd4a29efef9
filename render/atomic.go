package render

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// fileMode matches what os.Create yields under the usual 022 umask
const fileMode = 0o644

// writeFileAtomic runs encode against a temp file next to path and renames
// it into place, so readers never see a partial image
func writeFileAtomic(path string, encode func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".frame-*")
	if err != nil {
		return errors.Wrapf(err, "[writeFileAtomic] failed to create temp file for: %s", path)
	}
	tmp := f.Name()

	fail := func(err error, format string) error {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, format, path)
	}

	// CreateTemp opens with 0600
	if err = f.Chmod(fileMode); err != nil {
		return fail(err, "[writeFileAtomic] failed to chmod temp file for: %s")
	}
	if err = encode(f); err != nil {
		return fail(err, "[writeFileAtomic] failed to write: %s")
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "[writeFileAtomic] failed to close: %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "[writeFileAtomic] failed to rename %s to %s", tmp, path)
	}
	return nil
}

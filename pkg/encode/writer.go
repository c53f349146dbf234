package encode

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gridfold/gridfold/pkg/errors"
)

// WriteAtomic encodes img with enc and writes it to path atomically.
//
// The encoded bytes go to a uniquely named hidden temp file next to the
// destination; only after a successful encode and sync is the temp file
// renamed over path. On any failure the temp file is removed and path is
// left untouched.
func WriteAtomic(path string, img image.Image, enc Encoder) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "cannot create output directory %q", dir)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "cannot create temp file in %q", dir)
	}

	if err := enc.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeEncode, err, "%s encode failed", enc.Format())
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeEncode, err, "cannot sync %q", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeEncode, err, "cannot close %q", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeEncode, err, "cannot move output into place at %q", path)
	}
	return nil
}

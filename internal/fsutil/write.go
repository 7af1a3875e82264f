// Package fsutil provides file system utility functions.
package fsutil

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/NaithaniAR/10Knodes/internal/ctxlog"
)

// WriteFile creates or truncates path and writes data to it as one scoped
// operation. The file is closed on every exit path; a close failure is
// surfaced when the write itself succeeded.
func WriteFile(ctx context.Context, path string, data []byte) (err error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening destination file.", "path", path)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()

	if _, werr := f.Write(data); werr != nil {
		return errors.Wrapf(werr, "writing %s", path)
	}

	logger.Debug("Destination file written.", "path", path, "bytes", len(data))
	return nil
}

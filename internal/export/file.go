package export

import (
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"os"
	"path/filepath"
	"strings"
)

// FileMode is the permission WriteFile gives exported files.
const FileMode os.FileMode = 0o644

// TargetPath returns path with the exporter's extension appended unless it
// already ends with it, ignoring case.
func TargetPath(path string, e Exporter) string {
	ext := e.Extension()
	if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return path
	}

	return path + ext
}

// WriteFile exports options to TargetPath(path, e) and returns that path.
// The output is written to a temporary file in the same directory and
// renamed into place, so a failed export never leaves a partial file.
func WriteFile(path string, e Exporter, options []domain.DeliveryOption) (string, error) {
	target := TargetPath(path, e)

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return "", serrors.Wrap(serrors.ErrIO, err, "could not create temporary file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := e.Export(tmp, options); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return "", serrors.Wrap(serrors.ErrIO, err, "could not set mode on %s", target)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", serrors.Wrap(serrors.ErrIO, err, "could not sync %s", target)
	}
	if err := tmp.Close(); err != nil {
		return "", serrors.Wrap(serrors.ErrIO, err, "could not close %s", target)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", serrors.Wrap(serrors.ErrIO, err, "could not move export to %s", target)
	}

	return target, nil
}

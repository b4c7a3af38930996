package fixture

import (
	"archive/tar"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
)

// WriteArchive bundles files into a gzip-compressed USTAR tar stream.
// Entry metadata is fixed (epoch mtime, mode 0644, zero owner), so the
// archive bytes depend only on the file names and contents.
func WriteArchive(w io.Writer, files []File) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	for _, f := range files {
		hdr := &tar.Header{
			Name:    f.Name,
			Mode:    0644,
			Size:    int64(len(f.Data)),
			ModTime: time.Unix(0, 0).UTC(),
			Format:  tar.FormatUSTAR,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("fixture: archive header %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("fixture: archive write %s: %w", f.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("fixture: close tar: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("fixture: close gzip: %w", err)
	}
	return nil
}

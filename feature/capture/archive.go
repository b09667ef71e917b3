package capture

import (
	"bytes"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"
)

// Archive is a zip bundle of a session's screenshots ready for download.
type Archive struct {
	Filename string
	Data     []byte
	Count    int
}

// BuildArchive packs images into a zip in the given order. Entry timestamps are the
// capture times, so the same images always produce the same entries.
func BuildArchive(images []Image, prefix string, createdAt time.Time) (*Archive, error) {
	if len(images) == 0 {
		return nil, ErrNoScreenshots
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, img := range images {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     img.Name,
			Method:   zip.Deflate,
			Modified: img.Timestamp,
		})
		if err != nil {
			return nil, fmt.Errorf("add %s to archive: %w", img.Name, err)
		}
		if _, err := w.Write(img.Data); err != nil {
			return nil, fmt.Errorf("write %s to archive: %w", img.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	return &Archive{
		Filename: fmt.Sprintf("%s_%s.zip", prefix, createdAt.Format(nameLayout)),
		Data:     buf.Bytes(),
		Count:    len(images),
	}, nil
}

package capture

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"simulation-server/core/storage"

	"github.com/minio/minio-go/v7"
)

// Persister stores a copy of each capture outside process memory. Persistence is a
// side effect only; the in-memory session stays the source of truth.
type Persister interface {
	Persist(ctx context.Context, sessionID string, img Image) error
}

// DiskPersister writes captures into a directory, one subdirectory per session.
type DiskPersister struct {
	dir string
}

// NewDiskPersister creates dir if needed and returns a persister writing into it.
func NewDiskPersister(dir string) (*DiskPersister, error) {
	if dir == "" {
		return nil, fmt.Errorf("screenshot directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure screenshot directory: %w", err)
	}
	return &DiskPersister{dir: dir}, nil
}

// Path returns where a capture is written: <dir>/<session id>/<name>.
func (p *DiskPersister) Path(sessionID string, img Image) string {
	return filepath.Join(p.dir, sessionID, img.Name)
}

// Persist implements Persister.
func (p *DiskPersister) Persist(_ context.Context, sessionID string, img Image) error {
	target := p.Path(sessionID, img)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("ensure session directory: %w", err)
	}
	if err := os.WriteFile(target, img.Data, 0o644); err != nil {
		return fmt.Errorf("write screenshot %q: %w", img.Name, err)
	}
	return nil
}

// StoragePersister uploads captures to an object storage bucket under
// <prefix>/<session id>/<name>.
type StoragePersister struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStoragePersister returns a persister uploading into bucket.
func NewStoragePersister(client storage.Client, bucket, prefix string) *StoragePersister {
	return &StoragePersister{client: client, bucket: bucket, prefix: prefix}
}

// ObjectKey returns the key a capture is uploaded to.
func (p *StoragePersister) ObjectKey(sessionID string, img Image) string {
	return path.Join(p.prefix, sessionID, img.Name)
}

// Persist implements Persister.
func (p *StoragePersister) Persist(ctx context.Context, sessionID string, img Image) error {
	key := p.ObjectKey(sessionID, img)
	_, err := p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

package capture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"simulation-server/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiskPersister(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screenshots")
	p, err := NewDiskPersister(dir)
	require.NoError(t, err)

	img := Image{Name: "screenshot_20250101_000000.png", Timestamp: time.Now(), Data: []byte("png")}
	require.NoError(t, p.Persist(context.Background(), "session", img))

	data, err := os.ReadFile(filepath.Join(dir, "session", img.Name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestDiskPersister_SessionsDoNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	p, err := NewDiskPersister(dir)
	require.NoError(t, err)

	name := "screenshot_20250101_000000.png"
	require.NoError(t, p.Persist(context.Background(), "first", Image{Name: name, Data: []byte("one")}))
	require.NoError(t, p.Persist(context.Background(), "second", Image{Name: name, Data: []byte("two")}))

	first, err := os.ReadFile(p.Path("first", Image{Name: name}))
	require.NoError(t, err)
	second, err := os.ReadFile(p.Path("second", Image{Name: name}))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), first)
	assert.Equal(t, []byte("two"), second)
}

func TestDiskPersister_EmptyDir(t *testing.T) {
	_, err := NewDiskPersister("")
	assert.Error(t, err)
}

func TestStoragePersister(t *testing.T) {
	m := new(mocks.Client)
	p := NewStoragePersister(m, "simulation", "screenshots")
	img := Image{Name: "screenshot_20250101_000000.png", Data: []byte("png")}

	m.On("PutObject", mock.Anything, "simulation", "screenshots/s-1/screenshot_20250101_000000.png",
		mock.Anything, int64(3), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/png"
		})).Return(minio.UploadInfo{}, nil).Once()

	require.NoError(t, p.Persist(context.Background(), "s-1", img))
	m.AssertExpectations(t)
}

func TestStoragePersister_Error(t *testing.T) {
	m := new(mocks.Client)
	p := NewStoragePersister(m, "simulation", "screenshots")
	m.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	err := p.Persist(context.Background(), "s-1", Image{Name: "a.png", Data: []byte("x")})
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "screenshots/s-1/a.png")
}

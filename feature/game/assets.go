package game

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotServed is returned for paths outside the build or the allowlist.
var ErrNotServed = errors.New("asset not served")

// Asset describes one file of the build.
type Asset struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Manifest is the current asset index.
type Manifest struct {
	BuildDir  string    `json:"build_dir"`
	IndexedAt time.Time `json:"indexed_at"`
	Assets    []Asset   `json:"assets"`
}

// Index keeps the allowlisted files of the build directory.
type Index struct {
	root     string
	patterns []string

	mu        sync.RWMutex
	assets    map[string]Asset
	indexedAt time.Time
}

// NewIndex validates patterns and returns an empty index over root.
func NewIndex(root string, patterns []string) (*Index, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid asset pattern %q", p)
		}
	}
	return &Index{root: root, patterns: patterns, assets: map[string]Asset{}}, nil
}

// Root returns the build directory.
func (x *Index) Root() string {
	return x.root
}

// Allowed reports whether rel (slash separated, relative to root) matches the allowlist.
func (x *Index) Allowed(rel string) bool {
	for _, p := range x.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Resolve maps a request path to a file under root. The path must stay inside root
// and match the allowlist.
func (x *Index) Resolve(rel string) (string, error) {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" || rel == "." {
		return "", ErrNotServed
	}
	if !x.Allowed(rel) {
		return "", ErrNotServed
	}
	return filepath.Join(x.root, filepath.FromSlash(rel)), nil
}

// Refresh rescans the build directory. A missing directory leaves the index empty.
func (x *Index) Refresh() error {
	assets := map[string]Asset{}
	err := filepath.WalkDir(x.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == x.root {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(x.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !x.Allowed(rel) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		assets[rel] = Asset{Path: rel, Size: info.Size(), ModTime: info.ModTime().UTC()}
		return nil
	})
	if err != nil {
		return fmt.Errorf("index %s: %w", x.root, err)
	}

	x.mu.Lock()
	x.assets = assets
	x.indexedAt = time.Now().UTC()
	x.mu.Unlock()
	return nil
}

// Manifest returns the indexed assets sorted by path.
func (x *Index) Manifest() Manifest {
	x.mu.RLock()
	defer x.mu.RUnlock()
	m := Manifest{BuildDir: x.root, IndexedAt: x.indexedAt, Assets: make([]Asset, 0, len(x.assets))}
	for _, a := range x.assets {
		m.Assets = append(m.Assets, a)
	}
	sort.Slice(m.Assets, func(i, j int) bool { return m.Assets[i].Path < m.Assets[j].Path })
	return m
}

// Len returns the number of indexed assets.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.assets)
}

// Encoding describes how a Unity asset must be served.
type Encoding struct {
	ContentEncoding string
	ContentType     string
}

var unityTypes = map[string]string{
	".wasm": "application/wasm",
	".js":   "application/javascript",
	".data": "application/octet-stream",
	".json": "application/json",
}

// EncodingFor returns the headers for pre-compressed Unity assets. ok is false for
// plain files.
func EncodingFor(name string) (Encoding, bool) {
	ext := strings.ToLower(path.Ext(name))
	var enc string
	switch ext {
	case ".br":
		enc = "br"
	case ".gz":
		enc = "gzip"
	case ".unityweb":
		// Unity's default compression for .unityweb is gzip
		enc = "gzip"
	default:
		return Encoding{}, false
	}

	inner := strings.ToLower(path.Ext(strings.TrimSuffix(name, path.Ext(name))))
	ctype, ok := unityTypes[inner]
	if !ok {
		ctype = mime.TypeByExtension(inner)
	}
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	return Encoding{ContentEncoding: enc, ContentType: ctype}, true
}

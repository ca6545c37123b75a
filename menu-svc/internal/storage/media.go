package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"restaurant-ordering/menu-svc/internal/domain"

	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// FileMediaStore writes uploads under Dir with random names and serves them
// below URLPrefix. The extension follows the declared content type, never the
// client's filename.
type FileMediaStore struct {
	Dir       string
	URLPrefix string
	newName   func() string
}

func NewFileMediaStore(dir, urlPrefix string) *FileMediaStore {
	return &FileMediaStore{
		Dir:       dir,
		URLPrefix: strings.TrimSuffix(urlPrefix, "/"),
		newName:   func() string { return uuid.New().String() },
	}
}

func (s *FileMediaStore) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedMedia, filename, contentType)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	name := s.newName() + ext
	path := filepath.Join(s.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	written := false
	defer func() {
		dst.Close()
		if !written {
			os.Remove(path)
		}
	}()

	if _, err := io.Copy(dst, body); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := dst.Sync(); err != nil {
		return "", err
	}
	written = true

	return s.URLPrefix + "/" + name, nil
}

// Delete removes a file previously returned by Save. Unknown or foreign paths
// are ignored.
func (s *FileMediaStore) Delete(_ context.Context, url string) error {
	name := strings.TrimPrefix(url, s.URLPrefix+"/")
	if name == url || name == "" || filepath.Base(name) != name {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

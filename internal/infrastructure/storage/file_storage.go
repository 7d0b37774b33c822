// Package storage guarda los archivos subidos (notas fiscales, imágenes del catálogo)
// en un sistema de archivos afero y los expone bajo una URL pública.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.FileStorage = (*FileStorage)(nil)

// FileStorage buckets como directorios de primer nivel dentro de fs.
type FileStorage struct {
	fs      afero.Fs
	baseURL string
}

// New construye el almacenamiento. baseURL es el prefijo público bajo el que se sirven los archivos.
func New(fs afero.Fs, baseURL string) *FileStorage {
	return &FileStorage{fs: fs, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewOS almacenamiento sobre disco con raíz root.
func NewOS(root, baseURL string) *FileStorage {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root), baseURL)
}

// FS expone el sistema de archivos para servir los archivos por HTTP.
func (s *FileStorage) FS() afero.Fs { return s.fs }

// Upload escribe el contenido en bucket/objectPath y devuelve su URL pública.
func (s *FileStorage) Upload(_ context.Context, bucket, objectPath string, r io.Reader) (string, error) {
	key, err := objectKey(bucket, objectPath)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w: %w", path.Dir(key), domain.ErrStorage, err)
	}
	f, err := s.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w: %w", key, domain.ErrStorage, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w: %w", key, domain.ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w: %w", key, domain.ErrStorage, err)
	}
	return s.publicURL(key), nil
}

func (s *FileStorage) publicURL(key string) string {
	segs := strings.Split(strings.TrimPrefix(key, "/"), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segs, "/")
}

// objectKey normaliza bucket/objectPath y rechaza rutas que salgan del bucket.
func objectKey(bucket, objectPath string) (string, error) {
	if bucket == "" || strings.Contains(bucket, "/") || strings.HasPrefix(bucket, ".") {
		return "", fmt.Errorf("bucket %q: %w", bucket, domain.ErrInvalidInput)
	}
	clean := path.Clean("/" + objectPath)
	if clean == "/" {
		return "", fmt.Errorf("path vacío: %w", domain.ErrInvalidInput)
	}
	return "/" + bucket + clean, nil
}

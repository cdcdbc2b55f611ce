package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

var _ ports.ImageStorage = (*LocalStorage)(nil)

// Prefijo público bajo el que el router sirve el directorio de subidas.
const publicPrefix = "/uploads"

// LocalStorage guarda imágenes en disco bajo <dir>/<entidad>/<uuid>.<ext>
// y expone la ruta pública /uploads/<entidad>/<uuid>.<ext>.
type LocalStorage struct {
	dir string
}

// NewLocalStorage construye el adaptador y crea el directorio raíz si no existe.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save persiste la imagen con nombre aleatorio (uuid) y la extensión
// canónica de su tipo MIME. Devuelve la URL pública relativa.
func (s *LocalStorage) Save(entityKind string, img *dto.ImageUpload) (string, error) {
	ext, ok := validation.ImageExtension(img.ContentType)
	if !ok {
		return "", fmt.Errorf("storage: tipo no permitido: %s", img.ContentType)
	}
	subdir := filepath.Join(s.dir, entityKind)
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		return "", fmt.Errorf("storage: crear subdirectorio %s: %w", subdir, err)
	}
	name := uuid.New().String() + ext
	dst := filepath.Join(subdir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, img.Reader); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return path.Join(publicPrefix, entityKind, name), nil
}

// Delete elimina el archivo detrás de una URL pública. URLs fuera del
// prefijo o archivos ya borrados no son error.
func (s *LocalStorage) Delete(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, publicPrefix+"/")
	if !ok || rel == "" {
		return nil
	}
	// Evitar que una URL manipulada escape del directorio de subidas.
	rel = filepath.FromSlash(path.Clean(rel))
	if strings.HasPrefix(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}

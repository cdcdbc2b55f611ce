package ports

import "github.com/jhoicas/turavia-api/internal/application/dto"

// ImageStorage define el puerto de almacenamiento de imágenes subidas.
// Save persiste el contenido y devuelve la URL pública relativa
// (ej. /uploads/destinations/0f3c....jpg). Delete es tolerante: borrar una
// URL inexistente no es error, para que reemplazos repetidos sean seguros.
type ImageStorage interface {
	Save(entityKind string, img *dto.ImageUpload) (string, error)
	Delete(publicURL string) error
}

package dto

import "io"

// ImageUpload imagen recibida en una parte multipart, ya abierta por el
// handler. ContentType es el tipo olfateado del contenido real, no el que
// declara el cliente; Size es el tamaño exacto en bytes.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

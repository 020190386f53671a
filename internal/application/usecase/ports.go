package usecase

import (
	"context"
	"io"
)

// PhotoStore puerto del almacenamiento de objetos para fotos de productos.
// Lo implementa el adaptador S3; las URLs de lectura se firman por pedido.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// PhotoUpload un archivo de foto recibido en el formulario multipart.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

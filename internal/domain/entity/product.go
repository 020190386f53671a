package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPhoto foto de un producto almacenada en el bucket de objetos.
// ObjectKey es la clave S3; la URL de lectura se firma al responder.
type ProductPhoto struct {
	ID        string
	ProductID string
	ObjectKey string
}

// Product producto del catálogo, publicado por un proveedor.
// Slug se deriva del nombre; Quantity es el stock disponible.
type Product struct {
	ID            string
	SupplierID    string
	CategoryID    string
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	Quantity      int
	Origin        string
	NutritionFact string
	Photos        []ProductPhoto
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

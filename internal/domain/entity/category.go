package entity

// Category categoría del catálogo. Nombre único; slug derivado del nombre.
// Los tags db alimentan el repositorio genérico (pgx RowToStructByName).
type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

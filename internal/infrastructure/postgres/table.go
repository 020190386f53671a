package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Table lecturas genéricas sobre una tabla cuya entidad lleva tags db. Los
// escaneos usan pgx.RowToStructByName, así los repositorios simples no repiten
// listas de columnas ni Scan a mano. Las escrituras quedan en cada repositorio
// porque el INSERT/UPDATE explícito documenta el esquema.
type Table[E any] struct {
	q    Querier
	name string
}

// NewTable construye el acceso genérico para la tabla name.
func NewTable[E any](q Querier, name string) *Table[E] {
	return &Table[E]{q: q, name: name}
}

// GetBy devuelve la fila donde col = value, o (nil, nil) si no hay.
func (t *Table[E]) GetBy(col string, value any) (*E, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, t.name, col)
	rows, err := t.q.Query(context.Background(), query, value)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", t.name, err)
	}
	e, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	return e, nil
}

// ListBy devuelve las filas donde col = value, ordenadas por orderBy.
func (t *Table[E]) ListBy(col string, value any, orderBy string) ([]*E, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1 ORDER BY %s`, t.name, col, orderBy)
	rows, err := t.q.Query(context.Background(), query, value)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	return list, nil
}

// List devuelve todas las filas ordenadas por orderBy, con paginación opcional
// (limit <= 0 trae todo).
func (t *Table[E]) List(orderBy string, limit, offset int) ([]*E, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY %s`, t.name, orderBy)
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := t.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	return list, nil
}

// Count cuenta todas las filas.
func (t *Table[E]) Count() (int, error) {
	var n int
	err := t.q.QueryRow(context.Background(), fmt.Sprintf(`SELECT count(*) FROM %s`, t.name)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// CountBy cuenta las filas donde col = value.
func (t *Table[E]) CountBy(col string, value any) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.name, col)
	if err := t.q.QueryRow(context.Background(), query, value).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// DeleteBy borra las filas donde col = value. Devuelve false si no había.
func (t *Table[E]) DeleteBy(col string, value any) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, col)
	cmd, err := t.q.Exec(context.Background(), query, value)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	return cmd.RowsAffected() > 0, nil
}

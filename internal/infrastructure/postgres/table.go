package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// tableDef describe cómo mapear una entidad a su tabla.
type tableDef[K comparable, T entity.Keyed[K]] struct {
	name    string
	key     string
	columns []string // orden de Scan; incluye la clave
	orderBy string
	serial  bool // la clave la asigna la base (BIGSERIAL)
	scan    func(s scanner) (T, error)
	values  func(row T) map[string]any // columnas sin la clave
}

// Table implementa repository.Table sobre PostgreSQL con squirrel.
type Table[K comparable, T entity.Keyed[K]] struct {
	q   Querier
	sb  sq.StatementBuilderType
	def tableDef[K, T]
}

func newTable[K comparable, T entity.Keyed[K]](q Querier, def tableDef[K, T]) *Table[K, T] {
	return &Table[K, T]{
		q:   q,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		def: def,
	}
}

// Select devuelve todas las filas en el orden de la tabla.
func (t *Table[K, T]) Select(ctx context.Context) ([]T, error) {
	qb := t.sb.Select(t.def.columns...).From(t.def.name)
	if t.def.orderBy != "" {
		qb = qb.OrderBy(t.def.orderBy)
	}
	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := t.q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.def.name, err)
	}
	defer rows.Close()

	var list []T
	for rows.Next() {
		row, err := t.def.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.def.name, err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Insert persiste la fila y devuelve la versión guardada.
func (t *Table[K, T]) Insert(ctx context.Context, row T) (T, error) {
	var zero T
	set := t.def.values(row)
	if !t.def.serial {
		set[t.def.key] = row.Key()
	}
	sqlStr, args, err := t.sb.
		Insert(t.def.name).
		SetMap(set).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return zero, err
	}

	saved, err := t.def.scan(t.q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return zero, fmt.Errorf("insert %s %v: %w", t.def.name, row.Key(), domain.ErrDuplicate)
		}
		return zero, fmt.Errorf("insert %s: %w", t.def.name, err)
	}
	return saved, nil
}

// Update reemplaza la fila id. Las claves naturales pueden cambiar (renumerar una nota).
// Sin filas afectadas → domain.ErrNotFound.
func (t *Table[K, T]) Update(ctx context.Context, id K, row T) (T, error) {
	var zero T
	set := t.def.values(row)
	if !t.def.serial {
		set[t.def.key] = row.Key()
	}
	sqlStr, args, err := t.sb.
		Update(t.def.name).
		SetMap(set).
		Where(sq.Eq{t.def.key: id}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return zero, err
	}

	saved, err := t.def.scan(t.q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("update %s %v: %w", t.def.name, id, domain.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return zero, fmt.Errorf("update %s %v: %w", t.def.name, row.Key(), domain.ErrDuplicate)
		}
		return zero, fmt.Errorf("update %s: %w", t.def.name, err)
	}
	return saved, nil
}

// Delete elimina la fila id. Sin filas afectadas → domain.ErrNotFound.
func (t *Table[K, T]) Delete(ctx context.Context, id K) error {
	sqlStr, args, err := t.sb.
		Delete(t.def.name).
		Where(sq.Eq{t.def.key: id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := t.q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.def.name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete %s %v: %w", t.def.name, id, domain.ErrNotFound)
	}
	return nil
}

func (t *Table[K, T]) returning() string {
	return "RETURNING " + strings.Join(t.def.columns, ", ")
}

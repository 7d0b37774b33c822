package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo filas clave/valor (JSONB) de la tabla settings.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// List devuelve todas las claves persistidas.
func (r *SettingsRepo) List(ctx context.Context) ([]entity.Setting, error) {
	rows, err := r.q.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []entity.Setting
	for rows.Next() {
		var s entity.Setting
		var raw []byte
		if err := rows.Scan(&s.Key, &raw, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		s.Value = raw
		list = append(list, s)
	}
	return list, rows.Err()
}

// Upsert inserta o reemplaza el valor de la clave.
func (r *SettingsRepo) Upsert(ctx context.Context, s entity.Setting) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, s.Key, string(s.Value), s.UpdatedAt); err != nil {
		return fmt.Errorf("upsert setting %s: %w", s.Key, err)
	}
	return nil
}

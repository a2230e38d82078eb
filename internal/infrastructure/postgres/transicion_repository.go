package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.TransicionRepository = (*TransicionRepo)(nil)

// TransicionRepo historial de cambios de estado sobre PostgreSQL (append-only).
type TransicionRepo struct {
	pool *pgxpool.Pool
}

// NewTransicionRepository construye el adaptador.
func NewTransicionRepository(pool *pgxpool.Pool) *TransicionRepo {
	return &TransicionRepo{pool: pool}
}

// Append registra una transición.
func (r *TransicionRepo) Append(ctx context.Context, t *entity.Transicion) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trabajo_transiciones (id, trabajo_id, persona_id, desde, hacia, precio_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.TrabajoID, t.PersonaID, string(t.Desde), string(t.Hacia), t.PrecioTotal, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transicion: %w", err)
	}
	return nil
}

// ListByTrabajo devuelve las transiciones del trabajo en orden cronológico.
func (r *TransicionRepo) ListByTrabajo(ctx context.Context, trabajoID string) ([]entity.Transicion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, trabajo_id, persona_id, desde, hacia, precio_total, created_at
		FROM trabajo_transiciones
		WHERE trabajo_id = $1
		ORDER BY created_at ASC`, trabajoID)
	if err != nil {
		return nil, fmt.Errorf("list transiciones: %w", err)
	}
	defer rows.Close()

	out := []entity.Transicion{}
	for rows.Next() {
		var t entity.Transicion
		var desde, hacia string
		if err := rows.Scan(&t.ID, &t.TrabajoID, &t.PersonaID, &desde, &hacia, &t.PrecioTotal, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transicion: %w", err)
		}
		t.Desde, t.Hacia = entity.Estado(desde), entity.Estado(hacia)
		out = append(out, t)
	}
	return out, rows.Err()
}

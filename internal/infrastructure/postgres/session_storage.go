package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage guarda las claves de sesión (token, user) en la tabla session_values.
type SessionStorage struct {
	pool *pgxpool.Pool
}

// NewSessionStorage construye el adaptador.
func NewSessionStorage(pool *pgxpool.Pool) *SessionStorage {
	return &SessionStorage{pool: pool}
}

// Get devuelve el valor; ok=false si la clave no existe.
func (s *SessionStorage) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM session_values WHERE session_id = $1 AND key = $2`,
		sessionID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session value: %w", err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor.
func (s *SessionStorage) Set(ctx context.Context, sessionID, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO session_values (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		sessionID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set session value: %w", err)
	}
	return nil
}

// Remove borra las claves indicadas en una sola transacción.
func (s *SessionStorage) Remove(ctx context.Context, sessionID string, keys ...string) error {
	return runInTx(ctx, s.pool, func(tx pgx.Tx) error {
		for _, k := range keys {
			if _, err := tx.Exec(ctx,
				`DELETE FROM session_values WHERE session_id = $1 AND key = $2`, sessionID, k,
			); err != nil {
				return fmt.Errorf("remove session value %s: %w", k, err)
			}
		}
		return nil
	})
}

// Expire borra las sesiones cuya última escritura es anterior a before.
func (s *SessionStorage) Expire(ctx context.Context, before time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		WITH borradas AS (
			DELETE FROM session_values
			WHERE session_id IN (
				SELECT session_id FROM session_values
				GROUP BY session_id
				HAVING MAX(updated_at) < $1
			)
			RETURNING session_id
		)
		SELECT COUNT(DISTINCT session_id) FROM borradas`,
		before,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return n, nil
}

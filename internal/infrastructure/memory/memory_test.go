package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

func TestSessionStorage(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	require.NoError(t, s.Set(ctx, "s1", repository.SessionKeyToken, "tok"))
	require.NoError(t, s.Set(ctx, "s1", repository.SessionKeyUser, "{}"))
	require.NoError(t, s.Set(ctx, "s2", repository.SessionKeyToken, "otro"))

	v, ok, err := s.Get(ctx, "s1", repository.SessionKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Remove(ctx, "s1", repository.SessionKeyToken, repository.SessionKeyUser))
	_, ok, _ = s.Get(ctx, "s1", repository.SessionKeyToken)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "s1", repository.SessionKeyUser)
	assert.False(t, ok)

	v, ok, _ = s.Get(ctx, "s2", repository.SessionKeyToken)
	assert.True(t, ok, "las otras sesiones no se tocan")
	assert.Equal(t, "otro", v)
}

func TestSessionStorage_ExpireBorraSesionesViejas(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	require.NoError(t, s.Set(ctx, "vieja", repository.SessionKeyToken, "a"))
	require.NoError(t, s.Set(ctx, "vieja", repository.SessionKeyUser, "{}"))
	s.now = func() time.Time { return base.Add(8 * time.Hour) }
	require.NoError(t, s.Set(ctx, "nueva", repository.SessionKeyToken, "b"))

	n, err := s.Expire(ctx, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())

	_, ok, _ := s.Get(ctx, "vieja", repository.SessionKeyUser)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "nueva", repository.SessionKeyToken)
	assert.True(t, ok)
}

func TestTransicionRepository(t *testing.T) {
	ctx := context.Background()
	r := NewTransicionRepository()

	got, err := r.ListByTrabajo(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, r.Append(ctx, &entity.Transicion{ID: "a", TrabajoID: "t1", Hacia: entity.EstadoEnProceso}))
	require.NoError(t, r.Append(ctx, &entity.Transicion{ID: "b", TrabajoID: "t1", Hacia: entity.EstadoTerminado}))
	assert.ErrorIs(t, r.Append(ctx, &entity.Transicion{ID: "a", TrabajoID: "t1"}), domain.ErrDuplicate)

	got, err = r.ListByTrabajo(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.EstadoTerminado, got[1].Hacia)
}

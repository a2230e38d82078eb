package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// AuthRepository define el puerto de autenticación contra la API del taller (DIP).
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.AuthToken, error)
	Register(ctx context.Context, in *entity.Registro) (*entity.Persona, error)
}

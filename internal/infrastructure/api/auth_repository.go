package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.AuthRepository = (*AuthRepository)(nil)

// AuthRepository login y registro contra /persona.
type AuthRepository struct {
	c *Client
}

// NewAuthRepository construye el repositorio.
func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{c: c}
}

// Login POST /persona/login.
func (r *AuthRepository) Login(ctx context.Context, email, password string) (*entity.AuthToken, error) {
	body := map[string]string{"email": email, "password": password}
	return sendOne[entity.AuthToken](ctx, r.c, http.MethodPost, "/persona/login", body)
}

type registerResponse struct {
	Persona entity.Persona `json:"persona"`
}

// Register POST /persona/register; la API responde {firebaseUser, persona}.
func (r *AuthRepository) Register(ctx context.Context, in *entity.Registro) (*entity.Persona, error) {
	out, err := sendOne[registerResponse](ctx, r.c, http.MethodPost, "/persona/register", in)
	if err != nil {
		return nil, err
	}
	return &out.Persona, nil
}

package http

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/auth"
	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Locals keys para la sesión autenticada y su Store.
const (
	LocalSession = "session"
	LocalStore   = "store"
)

// sessionAuthenticator lo implementa *auth.AuthUseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, bearer string) (*auth.Session, error)
}

// AuthMiddleware valida el Bearer Token del dashboard, carga la sesión guardada y deja
// en c.Locals la sesión y el Store de esa sesión.
func AuthMiddleware(authn sessionAuthenticator, stores *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				return respondError(c, err)
			}
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalSession, sess)
		c.Locals(LocalStore, stores.For(sess.ID))
		return c.Next()
	}
}

// RequireRole deja pasar sólo a los tipos de persona indicados. Debe ir después de AuthMiddleware.
//   - 401 MISSING_ROLE si la sesión no tiene tipo.
//   - 403 FORBIDDEN si el tipo no está permitido.
func RequireRole(roles ...entity.TipoPersona) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.TipoPersona(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el usuario no tiene tipo asignado"})
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permisos para esta operación"})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión autenticada (después del middleware de auth).
func GetSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals(LocalSession).(*auth.Session)
	return s
}

// GetStore devuelve el Store de la sesión (después del middleware de auth).
func GetStore(c *fiber.Ctx) *store.Store {
	s, _ := c.Locals(LocalStore).(*store.Store)
	return s
}

// GetRole devuelve el tipo de persona del usuario logueado.
func GetRole(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return string(s.User.Tipo)
	}
	return ""
}

// GetPersonaID devuelve el id de la persona logueada.
func GetPersonaID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.User.ID
	}
	return ""
}

// RequestContext contexto del request con el token de la API para las llamadas salientes.
func RequestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if s := GetSession(c); s != nil {
		return s.Context(ctx)
	}
	return ctx
}

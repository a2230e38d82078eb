package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/pkg/jwt"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión autenticada: el token de la API del taller y el usuario guardado.
type Session struct {
	ID    string
	Token string
	User  entity.Persona
}

// Context devuelve ctx con el token de la API para las llamadas salientes.
func (s *Session) Context(ctx context.Context) context.Context {
	return repository.WithToken(ctx, s.Token)
}

// AuthUseCase casos de uso de autenticación: login, registro, sesión y logout.
type AuthUseCase struct {
	authRepo    repository.AuthRepository
	personaRepo repository.PersonaRepository
	storage     repository.SessionStorage
	stores      *store.Registry
	validator   *validation.Validator
	jwtCfg      JWTConfig
	log         *logger.Logger
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	authRepo repository.AuthRepository,
	personaRepo repository.PersonaRepository,
	storage repository.SessionStorage,
	stores *store.Registry,
	validator *validation.Validator,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		authRepo:    authRepo,
		personaRepo: personaRepo,
		storage:     storage,
		stores:      stores,
		validator:   validator,
		jwtCfg:      jwtCfg,
		log:         log.Component("auth"),
		now:         time.Now,
	}
}

// Login valida credenciales contra la API, resuelve la persona del usuario, guarda
// token y user en la sesión y devuelve el JWT del dashboard.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	tok, err := uc.authRepo.Login(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	user, err := uc.resolvePersona(repository.WithToken(ctx, tok.IDToken), tok.LocalID, in.Email)
	if err != nil {
		return nil, err
	}

	sid := uuid.New().String()
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("auth: serializar usuario: %w", err)
	}
	if err := uc.storage.Set(ctx, sid, repository.SessionKeyToken, tok.IDToken); err != nil {
		return nil, err
	}
	if err := uc.storage.Set(ctx, sid, repository.SessionKeyUser, string(userJSON)); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, sid, user.ID, string(user.Tipo), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("persona_id", user.ID).Str("tipo", string(user.Tipo)).Msg("login")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *user,
	}, nil
}

// resolvePersona busca la persona del usuario logueado: por firebaseUid y, si no, por email.
func (uc *AuthUseCase) resolvePersona(ctx context.Context, localID, email string) (*entity.Persona, error) {
	personas, err := uc.personaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: obtener personas: %w", err)
	}
	var byEmail *entity.Persona
	for i := range personas {
		p := &personas[i]
		if localID != "" && p.FirebaseUID == localID {
			return p, nil
		}
		if byEmail == nil && strings.EqualFold(p.Email, email) {
			byEmail = p
		}
	}
	if byEmail != nil {
		return byEmail, nil
	}
	return nil, fmt.Errorf("el usuario no tiene una persona asociada: %w", domain.ErrUnauthorized)
}

// Register da de alta un usuario con sus credenciales. Sin tipo se registra como Cliente.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Persona, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	tipo := entity.TipoPersona(in.Tipo)
	if tipo == "" {
		tipo = entity.TipoCliente
	}
	reg := &entity.Registro{
		Persona: entity.Persona{
			Nombre:    strings.TrimSpace(in.Nombre),
			Apellido:  strings.TrimSpace(in.Apellido),
			DNI:       in.DNI,
			Email:     in.Email,
			Telefono:  in.Telefono,
			Direccion: in.Direccion,
			CUIT:      in.CUIT,
			Tipo:      tipo,
		},
		Password: in.Password,
	}
	return uc.authRepo.Register(ctx, reg)
}

// Authenticate valida el JWT del dashboard y carga la sesión guardada.
func (uc *AuthUseCase) Authenticate(ctx context.Context, bearer string) (*Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, bearer)
	if err != nil {
		return nil, fmt.Errorf("token inválido o expirado: %w", domain.ErrUnauthorized)
	}
	token, ok, err := uc.storage.Get(ctx, claims.SessionID, repository.SessionKeyToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %w", domain.ErrSessionNotFound, domain.ErrUnauthorized)
	}
	raw, ok, err := uc.storage.Get(ctx, claims.SessionID, repository.SessionKeyUser)
	if err != nil {
		return nil, err
	}
	var user entity.Persona
	if ok {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("auth: usuario de sesión corrupto: %w", err)
		}
	} else {
		user = entity.Persona{ID: claims.PersonaID, Tipo: entity.TipoPersona(claims.Tipo)}
	}
	return &Session{ID: claims.SessionID, Token: token, User: user}, nil
}

// Logout borra token y user de la sesión y descarta su estado.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) (*dto.LogoutResponse, error) {
	if err := uc.storage.Remove(ctx, sessionID, repository.SessionKeyToken, repository.SessionKeyUser); err != nil {
		return nil, err
	}
	uc.stores.Drop(sessionID)
	return &dto.LogoutResponse{Redirect: "/"}, nil
}

// Sweep purga las sesiones cuyo JWT ya venció aunque nunca se haya hecho logout:
// sus claves guardadas y su Store.
func (uc *AuthUseCase) Sweep(ctx context.Context) (int, error) {
	before := uc.now().Add(-time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute)
	n, err := uc.storage.Expire(ctx, before)
	if err != nil {
		return 0, err
	}
	stores := uc.stores.Sweep(before)
	if n > 0 || stores > 0 {
		uc.log.Info().Int("sesiones", n).Int("stores", stores).Msg("sesiones vencidas purgadas")
	}
	return n, nil
}

// RunSweeper llama a Sweep cada every hasta que ctx se cancela.
func (uc *AuthUseCase) RunSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Sweep(ctx); err != nil {
				uc.log.Warn().Err(err).Msg("purga de sesiones")
			}
		}
	}
}

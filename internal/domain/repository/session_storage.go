package repository

import (
	"context"
	"time"
)

// Claves fijas del almacenamiento de sesión.
const (
	SessionKeyToken = "token"
	SessionKeyUser  = "user"
)

// SessionStorage guarda pares clave/valor por sesión (equivalente al localStorage del navegador).
type SessionStorage interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Remove(ctx context.Context, sessionID string, keys ...string) error
	// Expire borra las sesiones escritas por última vez antes de before y devuelve cuántas.
	Expire(ctx context.Context, before time.Time) (int, error)
}

type tokenKey struct{}

// WithToken devuelve un contexto que lleva el token de la API del taller; los adaptadores
// lo adjuntan como Bearer en cada llamada saliente.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extrae el token del contexto ("" si no hay).
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

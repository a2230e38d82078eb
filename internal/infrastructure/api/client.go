// Package api es el adaptador hacia la API REST del taller. Cada llamada lleva el token
// Bearer del contexto; los listados aceptan un array o el sobre {"data": [...]}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// maxBody límite de lectura de respuestas (1 MiB).
const maxBody = 1 << 20

// APIError respuesta no 2xx de la API del taller.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api %s %s: status=%d", e.Method, e.Path, e.Status)
}

// Unwrap traduce el status HTTP al error de dominio equivalente.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	}
	return domain.ErrUpstream
}

// Client cliente HTTP de la API del taller. Sin reintentos ni deduplicación.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL ya viene sin barra final (config).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("api"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := repository.TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("llamada a la API fallida")
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, errors.Join(domain.ErrUpstream, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}
	if len(raw) > maxBody {
		c.log.Error().Str("method", method).Str("path", path).Int("limit", maxBody).Msg("respuesta demasiado grande")
		return fmt.Errorf("api: %s %s: respuesta demasiado grande (más de %d bytes): %w", method, path, maxBody, domain.ErrUpstream)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if respBody == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, respBody); err != nil {
		return fmt.Errorf("api: decodificar %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage toma "message" o "error" del cuerpo de error, si lo hay.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// getList hace GET y decodifica un listado con o sin sobre "data".
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("api: GET %s: %w", path, err)
	}
	return items, nil
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	if raw[0] != '[' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, err
		}
		if len(env.Data) == 0 {
			return nil, fmt.Errorf("respuesta de listado inesperada")
		}
		raw = env.Data
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// sendOne hace la llamada y decodifica un objeto, tolerando {"data": {...}}.
func sendOne[T any](ctx context.Context, c *Client, method, path string, reqBody any) (*T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, path, reqBody, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("api: %s %s: respuesta vacía", method, path)
	}
	var campos map[string]json.RawMessage
	if json.Unmarshal(raw, &campos) == nil {
		if data, ok := campos["data"]; ok && campos["_id"] == nil {
			raw = data
		}
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("api: decodificar %s %s: %w", method, path, err)
	}
	return out, nil
}

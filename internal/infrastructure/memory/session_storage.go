// Package memory implementa los puertos de sesión e historial en memoria del proceso
// (SESSION_STORE=memory). Se pierden al reiniciar.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

type session struct {
	values    map[string]string
	updatedAt time.Time
}

// SessionStorage mapa sesión -> clave -> valor.
type SessionStorage struct {
	mu   sync.RWMutex
	data map[string]*session
	now  func() time.Time
}

// NewSessionStorage crea el almacenamiento vacío.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{data: make(map[string]*session), now: time.Now}
}

func (s *SessionStorage) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.data[sessionID]
	if !ok {
		return "", false, nil
	}
	v, ok := sess.values[key]
	return v, ok, nil
}

func (s *SessionStorage) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.data[sessionID]
	if !ok {
		sess = &session{values: make(map[string]string)}
		s.data[sessionID] = sess
	}
	sess.values[key] = value
	sess.updatedAt = s.now()
	return nil
}

func (s *SessionStorage) Remove(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(sess.values, k)
	}
	if len(sess.values) == 0 {
		delete(s.data, sessionID)
	}
	return nil
}

func (s *SessionStorage) Expire(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.data {
		if sess.updatedAt.Before(before) {
			delete(s.data, id)
			n++
		}
	}
	return n, nil
}

// Len cantidad de sesiones guardadas.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

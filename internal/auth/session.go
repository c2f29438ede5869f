package auth

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore хранит активные сессии в памяти: токен → имя
// пользователя. Состояния кроме этого флага у сессии нет.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

// Create выпускает новый токен для пользователя.
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()

	return token
}

// Username возвращает владельца токена, если сессия жива.
func (s *SessionStore) Username(token string) (string, bool) {
	s.mu.RLock()
	username, ok := s.sessions[token]
	s.mu.RUnlock()

	return username, ok
}

func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// pkg/mem/reset_tokens.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type ResetTokenStore interface {
	Set(token string, userID uuid.UUID, ttl time.Duration)

	// Consume returns the user the token was issued for and removes the
	// token (single-use). Missing or expired tokens report false.
	Consume(token string) (uuid.UUID, bool)
}

type resetEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]resetEntry
	now  func() time.Time
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]resetEntry),
		now:  time.Now,
	}
}

func NewResetTokensWithClock(now func() time.Time) *ResetTokens {
	s := NewResetTokens()
	s.now = now
	return s
}

// Set also drops every expired token so abandoned requests do not pile up.
func (s *ResetTokens) Set(token string, userID uuid.UUID, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, t)
		}
	}
	s.data[token] = resetEntry{
		userID:    userID,
		expiresAt: now.Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return uuid.Nil, false
	}
	delete(s.data, token) // single-use
	if s.now().After(e.expiresAt) {
		return uuid.Nil, false
	}
	return e.userID, true
}

// Len reports how many tokens are held, expired ones included.
func (s *ResetTokens) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

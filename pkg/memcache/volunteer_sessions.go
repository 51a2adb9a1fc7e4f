// pkg/mem/volunteer_sessions.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// VolunteerSession is the identity a volunteer acts under after redeeming
// an access code. It is scoped to exactly one event.
type VolunteerSession struct {
	VolunteerID uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	EventID     uuid.UUID `json:"event_id"`
	EventName   string    `json:"event_name"`
	Timestamp   time.Time `json:"timestamp"`
}

type SessionStore interface {
	Save(session VolunteerSession, ttl time.Duration)

	// Load returns the live session for the volunteer. Expired sessions
	// are dropped and reported as missing.
	Load(volunteerID uuid.UUID) (VolunteerSession, bool)

	Delete(volunteerID uuid.UUID)

	// DeleteEvent drops every session bound to the event.
	DeleteEvent(eventID uuid.UUID)
}

type entry struct {
	session   VolunteerSession
	expiresAt time.Time
}

type VolunteerSessions struct {
	mu   sync.RWMutex
	data map[uuid.UUID]entry
	now  func() time.Time
}

func NewVolunteerSessions() *VolunteerSessions {
	return &VolunteerSessions{
		data: make(map[uuid.UUID]entry),
		now:  time.Now,
	}
}

// NewVolunteerSessionsWithClock is used by tests that control time.
func NewVolunteerSessionsWithClock(now func() time.Time) *VolunteerSessions {
	s := NewVolunteerSessions()
	s.now = now
	return s
}

// Save replaces the volunteer's session and drops every expired one, so
// sessions that are never loaded again do not stay in memory.
func (s *VolunteerSessions) Save(session VolunteerSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
	s.data[session.VolunteerID] = entry{
		session:   session,
		expiresAt: now.Add(ttl),
	}
}

func (s *VolunteerSessions) Load(volunteerID uuid.UUID) (VolunteerSession, bool) {
	s.mu.RLock()
	e, ok := s.data[volunteerID]
	s.mu.RUnlock()
	if !ok {
		return VolunteerSession{}, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, volunteerID) // cleanup expired
		s.mu.Unlock()
		return VolunteerSession{}, false
	}
	return e.session, true
}

func (s *VolunteerSessions) Delete(volunteerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, volunteerID)
}

func (s *VolunteerSessions) DeleteEvent(eventID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.data {
		if e.session.EventID == eventID {
			delete(s.data, id)
		}
	}
}

// Len reports how many sessions are held, expired ones included.
func (s *VolunteerSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

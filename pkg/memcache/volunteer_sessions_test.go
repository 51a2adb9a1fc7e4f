package mem

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVolunteerSessions(t *testing.T) {
	now := time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)
	store := NewVolunteerSessionsWithClock(func() time.Time { return now })

	eventID := uuid.New()
	session := VolunteerSession{
		VolunteerID: uuid.New(),
		Name:        "Jan",
		EventID:     eventID,
		EventName:   "Voorjaarshike",
		Timestamp:   now,
	}

	t.Run("save and load", func(t *testing.T) {
		store.Save(session, time.Hour)
		got, ok := store.Load(session.VolunteerID)
		assert.True(t, ok)
		assert.Equal(t, session, got)
	})

	t.Run("expired session is dropped", func(t *testing.T) {
		store.Save(session, time.Minute)
		now = now.Add(2 * time.Minute)
		_, ok := store.Load(session.VolunteerID)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		store.Save(session, time.Hour)
		store.Delete(session.VolunteerID)
		_, ok := store.Load(session.VolunteerID)
		assert.False(t, ok)
	})

	t.Run("delete event only drops that event", func(t *testing.T) {
		other := VolunteerSession{VolunteerID: uuid.New(), Name: "Piet", EventID: uuid.New()}
		store.Save(session, time.Hour)
		store.Save(other, time.Hour)

		store.DeleteEvent(eventID)

		_, ok := store.Load(session.VolunteerID)
		assert.False(t, ok)
		_, ok = store.Load(other.VolunteerID)
		assert.True(t, ok)
	})

	t.Run("save sweeps sessions that expired without being loaded", func(t *testing.T) {
		swept := NewVolunteerSessionsWithClock(func() time.Time { return now })
		stale := VolunteerSession{VolunteerID: uuid.New(), Name: "Kees", EventID: eventID}
		swept.Save(stale, time.Minute)
		assert.Equal(t, 1, swept.Len())

		now = now.Add(2 * time.Minute)
		swept.Save(session, time.Hour)

		assert.Equal(t, 1, swept.Len())
		_, ok := swept.Load(session.VolunteerID)
		assert.True(t, ok)
	})
}

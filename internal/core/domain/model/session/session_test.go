package session_test

import (
	"testing"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)

	t.Run("should open active session", func(t *testing.T) {
		id := kernel.NewUUID()
		wsID := kernel.NewUUID()

		s, err := session.NewSession(id, "alice", wsID, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "alice", s.Picker())
		assert.True(t, s.WorkstationID().IsEqual(wsID))
		assert.True(t, s.IsActive())
		assert.Equal(t, now, s.LoginTime())
		assert.Equal(t, now, s.LastActivity())
		assert.Nil(t, s.LogoutTime())
		assert.Nil(t, s.CurrentHUCode())
		assert.Nil(t, s.CurrentClientCode())
	})

	t.Run("should fail with blank picker", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "  ", kernel.NewUUID(), now)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "value is required: picker")
	})

	t.Run("should fail with invalid workstation id", func(t *testing.T) {
		var invalidWS kernel.UUID

		s, err := session.NewSession(kernel.NewUUID(), "alice", invalidWS, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail validation for nil session", func(t *testing.T) {
		var s *session.Session

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, session.ErrSessionIsNotConstructed, err)
	})
}

func TestSession_Close(t *testing.T) {
	now := time.Now()

	t.Run("should close once and stay closed", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)

		closeTime := now.Add(time.Hour)
		s.Close(closeTime)

		assert.False(t, s.IsActive())
		require.NotNil(t, s.LogoutTime())
		assert.Equal(t, closeTime, *s.LogoutTime())

		s.Close(closeTime.Add(time.Hour))
		assert.Equal(t, closeTime, *s.LogoutTime())
	})
}

func TestSession_Context(t *testing.T) {
	now := time.Now()

	t.Run("should record working context and bump activity", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)

		later := now.Add(5 * time.Minute)
		require.NoError(t, s.SetContext("HU-0001", "ACME", later))

		require.NotNil(t, s.CurrentHUCode())
		assert.Equal(t, "HU-0001", *s.CurrentHUCode())
		require.NotNil(t, s.CurrentClientCode())
		assert.Equal(t, "ACME", *s.CurrentClientCode())
		assert.Equal(t, later, s.LastActivity())
	})

	t.Run("should keep previous context when fields are blank", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)
		require.NoError(t, s.SetContext("HU-0001", "ACME", now))

		require.NoError(t, s.SetContext("HU-0002", "", now))

		assert.Equal(t, "HU-0002", *s.CurrentHUCode())
		assert.Equal(t, "ACME", *s.CurrentClientCode())
	})

	t.Run("should reject context updates on closed session", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)
		s.Close(now)

		err = s.SetContext("HU-0001", "ACME", now)

		require.Error(t, err)
		assert.Equal(t, session.ErrSessionIsClosed, err)
		assert.Nil(t, s.CurrentHUCode())
	})
}

func TestSession_Touch(t *testing.T) {
	now := time.Now()

	t.Run("should bump activity on open session", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)

		later := now.Add(time.Minute)
		require.NoError(t, s.Touch(later))

		assert.Equal(t, later, s.LastActivity())
	})

	t.Run("should reject touch on closed session", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)
		s.Close(now)

		err = s.Touch(now.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, session.ErrSessionIsClosed, err)
	})
}

func TestSession_IsStale(t *testing.T) {
	now := time.Now()
	ttl := 30 * time.Minute

	t.Run("should report stale after the ttl", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)

		assert.False(t, s.IsStale(now.Add(ttl), ttl))
		assert.True(t, s.IsStale(now.Add(ttl+time.Second), ttl))
	})

	t.Run("should never report closed sessions as stale", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)
		s.Close(now)

		assert.False(t, s.IsStale(now.Add(24*time.Hour), ttl))
	})

	t.Run("should restart the clock on activity", func(t *testing.T) {
		s, err := session.NewSession(kernel.NewUUID(), "alice", kernel.NewUUID(), now)
		require.NoError(t, err)

		require.NoError(t, s.Touch(now.Add(ttl)))

		assert.False(t, s.IsStale(now.Add(ttl+time.Minute), ttl))
	})
}

func TestRestoreSession(t *testing.T) {
	now := time.Now()

	t.Run("should restore closed session with context", func(t *testing.T) {
		logout := now.Add(time.Hour)
		hu := "HU-0001"
		client := "ACME"

		s, err := session.RestoreSession(
			kernel.NewUUID(), "alice", kernel.NewUUID(),
			now, &logout, false, &hu, &client, now.Add(50*time.Minute))

		require.NoError(t, err)
		assert.False(t, s.IsActive())
		assert.Equal(t, logout, *s.LogoutTime())
		assert.Equal(t, "HU-0001", *s.CurrentHUCode())
		assert.Equal(t, "ACME", *s.CurrentClientCode())
		assert.Equal(t, now.Add(50*time.Minute), s.LastActivity())
	})
}

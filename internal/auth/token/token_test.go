package token

import (
	"testing"
	"time"

	autherrors "go-attendo/internal/auth/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	signed, exp, err := m.Issue("emp-1", "manager", TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := m.Parse(signed, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, "emp-1", claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	access, _, err := m.Issue("emp-1", "employee", TypeAccess)
	require.NoError(t, err)
	refresh, _, err := m.Issue("emp-1", "employee", TypeRefresh)
	require.NoError(t, err)

	t.Run("wrong type", func(t *testing.T) {
		_, err := m.Parse(refresh, TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other", time.Hour, time.Hour)
		other.now = m.now
		_, err := other.Parse(access, TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewManager("secret", time.Hour, time.Hour)
		later.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err := later.Parse(access, TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-jwt", TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replydesk/internal/shared/authorization"
)

func planWithSelfEdit(t *testing.T, allow bool) *Plan {
	t.Helper()
	now := time.Now()
	p, err := ReconstructPlan(1, "plan_test01", "Basic", "", nil, allow, now, now)
	require.NoError(t, err)
	return p
}

func TestCanEditSettings(t *testing.T) {
	locked := planWithSelfEdit(t, false)
	selfEdit := planWithSelfEdit(t, true)

	tests := []struct {
		name string
		role authorization.UserRole
		plan *Plan
		want bool
	}{
		{"admin with nil plan", authorization.RoleAdmin, nil, true},
		{"admin with locked plan", authorization.RoleAdmin, locked, true},
		{"admin with self-edit plan", authorization.RoleAdmin, selfEdit, true},
		{"client with nil plan", authorization.RoleClient, nil, false},
		{"client with locked plan", authorization.RoleClient, locked, false},
		{"client with self-edit plan", authorization.RoleClient, selfEdit, true},
		{"unknown role with self-edit plan", authorization.UserRole("support"), selfEdit, true},
		{"unknown role with nil plan", authorization.UserRole("support"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditSettings(tt.role, tt.plan))
		})
	}
}

func TestCanEditSettings_IsPure(t *testing.T) {
	p := planWithSelfEdit(t, false)

	assert.False(t, CanEditSettings(authorization.RoleClient, p))

	// Toggling the plan flag changes the outcome on the next call.
	p.SetAllowSelfEdit(true)
	assert.True(t, CanEditSettings(authorization.RoleClient, p))

	p.SetAllowSelfEdit(false)
	assert.False(t, CanEditSettings(authorization.RoleClient, p))
}

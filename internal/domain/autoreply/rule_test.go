package autoreply

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name      string
		clientID  uint
		keyword   string
		matchMode MatchMode
		replyBody string
		wantErr   string
	}{
		{
			name:      "valid rule",
			clientID:  1,
			keyword:   "hours",
			matchMode: MatchModeExact,
			replyBody: "We are open 9-5.",
		},
		{
			name:      "contains mode",
			clientID:  1,
			keyword:   "price",
			matchMode: MatchModeContains,
			replyBody: "See our price list.",
		},
		{
			name:      "missing client",
			keyword:   "hours",
			matchMode: MatchModeExact,
			replyBody: "We are open 9-5.",
			wantErr:   "client ID is required",
		},
		{
			name:      "empty keyword",
			clientID:  1,
			matchMode: MatchModeExact,
			replyBody: "We are open 9-5.",
			wantErr:   "keyword is required",
		},
		{
			name:      "invalid match mode",
			clientID:  1,
			keyword:   "hours",
			matchMode: MatchMode("regex"),
			replyBody: "We are open 9-5.",
			wantErr:   "invalid match mode",
		},
		{
			name:      "empty reply body",
			clientID:  1,
			keyword:   "hours",
			matchMode: MatchModeExact,
			wantErr:   "reply body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule(tt.clientID, tt.keyword, tt.matchMode, tt.replyBody, 10)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, rule)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(rule.SID(), "rule_"))
			assert.True(t, rule.IsActive())
			assert.Equal(t, 10, rule.Priority())
		})
	}
}

func TestRule_Update(t *testing.T) {
	rule, err := NewRule(1, "hours", MatchModeExact, "We are open 9-5.", 10)
	require.NoError(t, err)

	err = rule.Update("opening hours", MatchModeContains, "We are open weekdays 9-5.", 20)
	require.NoError(t, err)
	assert.Equal(t, "opening hours", rule.Keyword())
	assert.Equal(t, MatchModeContains, rule.MatchMode())
	assert.Equal(t, 20, rule.Priority())

	err = rule.Update("", MatchModeExact, "body", 0)
	require.Error(t, err)
	assert.Equal(t, "opening hours", rule.Keyword())

	err = rule.Update("hours", MatchMode("regex"), "body", 0)
	require.Error(t, err)
	assert.Equal(t, MatchModeContains, rule.MatchMode())
}

func TestRule_ActivateDeactivate(t *testing.T) {
	rule, err := NewRule(1, "hours", MatchModeExact, "We are open 9-5.", 0)
	require.NoError(t, err)
	require.True(t, rule.IsActive())

	rule.Deactivate()
	assert.False(t, rule.IsActive())

	rule.Deactivate()
	assert.False(t, rule.IsActive())

	rule.Activate()
	assert.True(t, rule.IsActive())
}

func TestMatchMode_IsValid(t *testing.T) {
	assert.True(t, MatchModeExact.IsValid())
	assert.True(t, MatchModeContains.IsValid())
	assert.False(t, MatchMode("prefix").IsValid())
	assert.False(t, MatchMode("").IsValid())
}

package autoreply

import (
	"fmt"
	"time"

	"replydesk/internal/shared/biztime"
	"replydesk/internal/shared/id"
)

// MatchMode decides how a rule's keyword is compared against an inbound
// message by the external delivery integration.
type MatchMode string

const (
	MatchModeExact    MatchMode = "exact"
	MatchModeContains MatchMode = "contains"
)

func (m MatchMode) IsValid() bool {
	return m == MatchModeExact || m == MatchModeContains
}

// Rule is one auto-reply configuration owned by a client. This service stores
// rules; matching and delivery happen in the external responder.
type Rule struct {
	id        uint
	sid       string
	clientID  uint
	keyword   string
	matchMode MatchMode
	replyBody string
	isActive  bool
	priority  int
	createdAt time.Time
	updatedAt time.Time
}

func NewRule(clientID uint, keyword string, matchMode MatchMode, replyBody string, priority int) (*Rule, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if keyword == "" {
		return nil, fmt.Errorf("keyword is required")
	}
	if !matchMode.IsValid() {
		return nil, fmt.Errorf("invalid match mode: %s", matchMode)
	}
	if replyBody == "" {
		return nil, fmt.Errorf("reply body is required")
	}

	sid, err := id.NewAutoReplyID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Rule{
		sid:       sid,
		clientID:  clientID,
		keyword:   keyword,
		matchMode: matchMode,
		replyBody: replyBody,
		isActive:  true,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRule(ruleID uint, sid string, clientID uint, keyword string,
	matchMode MatchMode, replyBody string, isActive bool, priority int,
	createdAt, updatedAt time.Time) (*Rule, error) {

	if ruleID == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if !matchMode.IsValid() {
		return nil, fmt.Errorf("invalid match mode: %s", matchMode)
	}

	return &Rule{
		id:        ruleID,
		sid:       sid,
		clientID:  clientID,
		keyword:   keyword,
		matchMode: matchMode,
		replyBody: replyBody,
		isActive:  isActive,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Rule) ID() uint             { return r.id }
func (r *Rule) SID() string          { return r.sid }
func (r *Rule) ClientID() uint       { return r.clientID }
func (r *Rule) Keyword() string      { return r.keyword }
func (r *Rule) MatchMode() MatchMode { return r.matchMode }
func (r *Rule) ReplyBody() string    { return r.replyBody }
func (r *Rule) IsActive() bool       { return r.isActive }
func (r *Rule) Priority() int        { return r.priority }
func (r *Rule) CreatedAt() time.Time { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time { return r.updatedAt }

// SetID sets the rule ID (only for persistence layer use)
func (r *Rule) SetID(ruleID uint) error {
	if r.id != 0 {
		return fmt.Errorf("rule ID is already set")
	}
	if ruleID == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	r.id = ruleID
	return nil
}

func (r *Rule) Update(keyword string, matchMode MatchMode, replyBody string, priority int) error {
	if keyword == "" {
		return fmt.Errorf("keyword is required")
	}
	if !matchMode.IsValid() {
		return fmt.Errorf("invalid match mode: %s", matchMode)
	}
	if replyBody == "" {
		return fmt.Errorf("reply body is required")
	}
	r.keyword = keyword
	r.matchMode = matchMode
	r.replyBody = replyBody
	r.priority = priority
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Rule) Activate() {
	if r.isActive {
		return
	}
	r.isActive = true
	r.updatedAt = biztime.NowUTC()
}

func (r *Rule) Deactivate() {
	if !r.isActive {
		return
	}
	r.isActive = false
	r.updatedAt = biztime.NowUTC()
}

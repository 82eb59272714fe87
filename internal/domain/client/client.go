package client

import (
	"fmt"
	"strings"
	"time"

	"replydesk/internal/shared/biztime"
	"replydesk/internal/shared/id"
)

// Client is a tenant account, optionally subscribed to a plan. A client
// without a plan has no enabled features.
type Client struct {
	id           uint
	sid          string
	businessName string
	email        string
	planID       *uint
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewClient(businessName, email string, planID *uint) (*Client, error) {
	if businessName == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}

	sid, err := id.NewClientID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Client{
		sid:          sid,
		businessName: businessName,
		email:        strings.ToLower(email),
		planID:       planID,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructClient(clientID uint, sid, businessName, email string,
	planID *uint, isActive bool, createdAt, updatedAt time.Time) (*Client, error) {

	if clientID == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}

	return &Client{
		id:           clientID,
		sid:          sid,
		businessName: businessName,
		email:        email,
		planID:       planID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Client) ID() uint             { return c.id }
func (c *Client) SID() string          { return c.sid }
func (c *Client) BusinessName() string { return c.businessName }
func (c *Client) Email() string        { return c.email }
func (c *Client) PlanID() *uint        { return c.planID }
func (c *Client) IsActive() bool       { return c.isActive }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the client ID (only for persistence layer use)
func (c *Client) SetID(clientID uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if clientID == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = clientID
	return nil
}

// UpdateBusinessName is the only profile field a client may change itself.
func (c *Client) UpdateBusinessName(name string) error {
	if name == "" {
		return fmt.Errorf("business name is required")
	}
	c.businessName = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Client) UpdateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	c.email = strings.ToLower(email)
	c.updatedAt = biztime.NowUTC()
	return nil
}

// AssignPlan moves the client to a plan; nil detaches the client from any
// plan, which empties its enabled-feature list.
func (c *Client) AssignPlan(planID *uint) {
	c.planID = planID
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) Activate() {
	if c.isActive {
		return
	}
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) Deactivate() {
	if !c.isActive {
		return
	}
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}

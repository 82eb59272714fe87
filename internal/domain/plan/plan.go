package plan

import (
	"fmt"
	"time"

	"replydesk/internal/shared/biztime"
	"replydesk/internal/shared/id"
)

// Plan is a subscription tier controlling which features are enabled for its
// clients and whether those clients may self-edit feature settings.
type Plan struct {
	id            uint
	sid           string
	name          string
	description   string
	price         *uint64 // monthly price in minor units, nil when unset
	allowSelfEdit bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPlan creates a new plan. Self-editing of feature settings is disabled
// until an admin explicitly enables it.
func NewPlan(name, description string, price *uint64) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}

	sid, err := id.NewPlanID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Plan{
		sid:           sid,
		name:          name,
		description:   description,
		price:         price,
		allowSelfEdit: false,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence.
func ReconstructPlan(planID uint, sid, name, description string, price *uint64,
	allowSelfEdit bool, createdAt, updatedAt time.Time) (*Plan, error) {

	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
		id:            planID,
		sid:           sid,
		name:          name,
		description:   description,
		price:         price,
		allowSelfEdit: allowSelfEdit,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) Price() *uint64       { return p.price }
func (p *Plan) AllowSelfEdit() bool  { return p.allowSelfEdit }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

func (p *Plan) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	p.name = name
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Plan) UpdateDescription(description string) {
	p.description = description
	p.updatedAt = biztime.NowUTC()
}

func (p *Plan) UpdatePrice(price *uint64) {
	p.price = price
	p.updatedAt = biztime.NowUTC()
}

func (p *Plan) SetAllowSelfEdit(allow bool) {
	p.allowSelfEdit = allow
	p.updatedAt = biztime.NowUTC()
}

package user

import (
	"fmt"
	"strings"
	"time"

	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/biztime"
	"replydesk/internal/shared/id"
)

// User is a login account. Client-role users carry the client they belong to;
// admin users have no client binding.
type User struct {
	id           uint
	sid          string
	email        string
	passwordHash string
	role         authorization.UserRole
	clientID     *uint
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash string, role authorization.UserRole, clientID *uint) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleClient && clientID == nil {
		return nil, fmt.Errorf("client users must reference a client")
	}

	sid, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		sid:          sid,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		clientID:     clientID,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(userID uint, sid, email, passwordHash string,
	role authorization.UserRole, clientID *uint, isActive bool,
	createdAt, updatedAt time.Time) (*User, error) {

	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           userID,
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		clientID:     clientID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                         { return u.id }
func (u *User) SID() string                      { return u.sid }
func (u *User) Email() string                    { return u.email }
func (u *User) PasswordHash() string             { return u.passwordHash }
func (u *User) Role() authorization.UserRole     { return u.role }
func (u *User) ClientID() *uint                  { return u.clientID }
func (u *User) IsActive() bool                   { return u.isActive }
func (u *User) CreatedAt() time.Time             { return u.createdAt }
func (u *User) UpdatedAt() time.Time             { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

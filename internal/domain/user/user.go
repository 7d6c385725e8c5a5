package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/rawad-inc/rawad/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without
// persistence concerns). Authentication and session handling live outside
// this service; the aggregate only carries identity and role data.
type User struct {
	id         uint
	publicID   uuid.UUID
	username   string
	email      string
	firstName  string
	lastName   string
	role       vo.Role
	isVerified bool
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewUser creates a new user aggregate with initial values.
func NewUser(username, email string, role vo.Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 150 {
		return nil, fmt.Errorf("username exceeds maximum length of 150 characters")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		publicID:  uuid.New(),
		username:  username,
		email:     email,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	publicID uuid.UUID,
	username, email, firstName, lastName string,
	role vo.Role,
	isVerified, isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if publicID == uuid.Nil {
		return nil, fmt.Errorf("user public ID is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:         id,
		publicID:   publicID,
		username:   username,
		email:      email,
		firstName:  firstName,
		lastName:   lastName,
		role:       role,
		isVerified: isVerified,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (u *User) ID() uint            { return u.id }
func (u *User) PublicID() uuid.UUID { return u.publicID }
func (u *User) Username() string    { return u.username }
func (u *User) Email() string       { return u.email }
func (u *User) FirstName() string   { return u.firstName }
func (u *User) LastName() string    { return u.lastName }
func (u *User) Role() vo.Role       { return u.role }
func (u *User) IsVerified() bool    { return u.isVerified }
func (u *User) IsActive() bool      { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID assigns the database identity after the initial insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// FullName returns "first last" or the username when names are unset.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if name == "" {
		return u.username
	}
	return name
}

// UpdateName changes the display name.
func (u *User) UpdateName(firstName, lastName string) {
	u.firstName = strings.TrimSpace(firstName)
	u.lastName = strings.TrimSpace(lastName)
	u.updatedAt = time.Now()
}

// MarkVerified flags the account as verified.
func (u *User) MarkVerified() {
	u.isVerified = true
	u.updatedAt = time.Now()
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

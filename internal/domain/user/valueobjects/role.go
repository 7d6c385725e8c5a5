package valueobjects

import "fmt"

// Role classifies what a user does on the platform.
type Role string

const (
	RoleJobSeeker    Role = "job_seeker"
	RoleJobPublisher Role = "job_publisher"
	RoleSupporter    Role = "supporter"
	RoleStaff        Role = "staff"
)

var validRoles = map[Role]bool{
	RoleJobSeeker:    true,
	RoleJobPublisher: true,
	RoleSupporter:    true,
	RoleStaff:        true,
}

func NewRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", value)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// DisplayName returns the human readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleJobSeeker:
		return "Job Seeker"
	case RoleJobPublisher:
		return "Job Publisher"
	case RoleSupporter:
		return "Supporter"
	case RoleStaff:
		return "Staff"
	default:
		return string(r)
	}
}

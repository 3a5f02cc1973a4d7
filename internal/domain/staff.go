package domain

import "time"

// StaffRole enumerates staff roles as they appear in token payloads.
type StaffRole string

const (
	StaffRoleManager     StaffRole = "manager"
	StaffRoleSalesperson StaffRole = "salesperson"
)

// Role codes as stored in the staff directory.
const (
	RoleCodeManager     = 1
	RoleCodeSalesperson = 2
)

// RoleFromCode maps a directory role code to a role name. Code 1 is manager,
// everything else is salesperson.
func RoleFromCode(code int) StaffRole {
	if code == RoleCodeManager {
		return StaffRoleManager
	}
	return StaffRoleSalesperson
}

// StaffMember is a salesperson or manager identified by an opaque tracking id.
type StaffMember struct {
	ID         string
	TrackingID string
	Name       string
	RoleCode   int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StoreMembership links a staff member to a store they can record sales for.
type StoreMembership struct {
	StoreID   string
	StoreName string
}

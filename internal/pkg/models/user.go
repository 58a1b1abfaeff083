package models

import "github.com/google/uuid"

// UserRole is the role claim carried by an authenticated caller
type UserRole string

const (
	RoleRider  UserRole = "rider"
	RoleDriver UserRole = "driver"
	RoleAdmin  UserRole = "admin"
)

// Requester identifies the caller of a ride operation. An empty Role marks an internal caller.
type Requester struct {
	ID   uuid.UUID
	Role UserRole
}

// IsInternal reports whether access checks are bypassed
func (r Requester) IsInternal() bool {
	return r.Role == "" || r.Role == RoleAdmin
}

// Package staff models the authenticated principal acting on the system.
// Authentication itself is an external collaborator; this core only consumes
// the resulting identity, role, and branch scope.
package staff

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")

// Principal is the authenticated actor behind a request: a customer or a
// staff member. Staff principals carry the branch they work at; customers
// have no branch. The branch is always threaded through operations as an
// explicit value, never inferred from ambient state.
type Principal struct {
	id       kernel.UUID
	role     Role
	branchID *kernel.UUID

	isConstructed bool
}

// NewPrincipal creates a principal with a validated id and role.
// branchID may be nil for customers.
func NewPrincipal(id kernel.UUID, role Role, branchID *kernel.UUID) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return Principal{}, err
		}
	}

	return Principal{
		id:            id,
		role:          role,
		branchID:      branchID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Principal was created through its constructor.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the principal's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// BranchID returns the staff member's branch, or nil for customers.
func (p Principal) BranchID() *kernel.UUID {
	return p.branchID
}

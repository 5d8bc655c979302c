package model

import "errors"

var (
	// ErrTeamRequestNotFound indicates that the requested team request does not exist.
	ErrTeamRequestNotFound = errors.New("team request not found")
	// ErrCompanyNotFound indicates that the owning company account does not exist.
	ErrCompanyNotFound = errors.New("company account not found")
	// ErrInvalidName indicates that the team request name is missing.
	ErrInvalidName = errors.New("name is required")
	// ErrNoRoles indicates that the demand contains no role requirements.
	ErrNoRoles = errors.New("at least one role requirement is required")
	// ErrInvalidRole indicates a blank role name in a role requirement.
	ErrInvalidRole = errors.New("role must not be blank")
	// ErrInvalidRoleCount indicates a non-positive vacancy count in a role requirement.
	ErrInvalidRoleCount = errors.New("role count must be greater than 0")
	// ErrInvalidWindow indicates that end_date is not after start_date.
	ErrInvalidWindow = errors.New("end_date must be after start_date")
)

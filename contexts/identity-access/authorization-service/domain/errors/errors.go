package errors

import "errors"

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidResource       = errors.New("invalid resource")
	ErrPrincipalNotFound     = errors.New("principal not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidRoleTransition = errors.New("invalid role transition")
	ErrNotEligibleForSeller  = errors.New("not eligible for seller upgrade")
)

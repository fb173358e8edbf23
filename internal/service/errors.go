package service

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrInvalidStatus    = errors.New("invalid status transition")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrNotConfigured    = errors.New("not configured")
)

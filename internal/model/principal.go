package model

import "github.com/google/uuid"

type AppRole string

const (
	AppRoleAdmin  AppRole = "admin"
	AppRoleDriver AppRole = "driver"
)

func (r AppRole) Valid() bool {
	return r == AppRoleAdmin || r == AppRoleDriver
}

type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   AppRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == AppRoleAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == AppRoleDriver
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User representa un usuario del panel administrativo.
// Un usuario inactivo no puede iniciar sesión; el contador de usuarios
// activos del dashboard cuenta IsActive = true.
type User struct {
	ID           int64
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, editor
	IsActive     bool   // default true
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

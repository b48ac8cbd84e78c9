package entity

import "time"

// Role rol cerrado de usuario.
type Role string

// Roles válidos para User.
const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// CanViewFinancials reporta si el rol puede ver montos de dinero (ingresos,
// cuotas, precios de venta en reportes). Employee opera ventas pero no los ve.
func (r Role) CanViewFinancials() bool {
	return r == RoleOwner || r == RoleAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	FullName     string
	Active       bool
	CreatedAt    time.Time
}

package entity

import "time"

// Roles válidos para User. Deben coincidir con el catálogo de la tabla roles.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// ValidRole informa si el nombre de rol pertenece al catálogo fijo.
func ValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin || role == RoleUser
}

// User representa un usuario del sistema. Todo usuario salvo el superadmin
// pertenece a exactamente una Company (CompanyID nil solo para superadmin).
// IsCompanyAdmin marca al administrador del tenant: es un flag aparte del
// campo Role y un usuario con este flag no puede ser eliminado.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string // bcrypt, nunca texto plano después de persistir
	Role           string // superadmin, admin, user
	IsCompanyAdmin bool
	Active         bool
	CompanyID      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelongsTo informa si el usuario pertenece a la empresa indicada.
func (u *User) BelongsTo(companyID string) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}

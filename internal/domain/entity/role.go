package entity

import "time"

// Nombres de permisos del catálogo inicial.
const (
	PermManageUsers     = "manage_users"
	PermManageCompanies = "manage_companies"
	PermViewReports     = "view_reports"
)

// Role entrada del catálogo de roles (superadmin, admin, user).
// Es la representación normalizada, con permisos asociados muchos-a-muchos;
// el campo User.Role guarda el nombre desnormalizado.
type Role struct {
	ID          string
	Name        string // único
	Permissions []Permission
	CreatedAt   time.Time
}

// Permission permiso de grano fino asignable a roles.
type Permission struct {
	ID        string
	Name      string // único, ej. manage_users
	CreatedAt time.Time
}

// HasPermission informa si el rol tiene asociado el permiso con ese nombre.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}

package dto

// PermissionResponse salida de un permiso del catálogo.
type PermissionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleResponse salida de un rol con sus permisos asociados.
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions"`
}

// AssignPermissionsRequest reemplaza el set completo de permisos de un rol.
type AssignPermissionsRequest struct {
	PermissionIDs []string `json:"permissionIds"`
}

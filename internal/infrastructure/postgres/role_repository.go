package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Necesita el pool (no un Querier) porque SetRolePermissions abre su propia
// transacción para reemplazar el set completo de forma atómica.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de roles y permisos.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// ListRoles devuelve todos los roles con sus permisos asociados.
func (r *RoleRepo) ListRoles() ([]*entity.Role, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	byID := map[string]*entity.Role{}
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Permissions = []entity.Permission{}
		roles = append(roles, &role)
		byID[role.ID] = &role
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	permRows, err := r.pool.Query(ctx, `
		SELECT rp.role_id, p.id, p.name, p.created_at
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer permRows.Close()

	for permRows.Next() {
		var roleID string
		var p entity.Permission
		if err := permRows.Scan(&roleID, &p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		if role, ok := byID[roleID]; ok {
			role.Permissions = append(role.Permissions, p)
		}
	}
	return roles, permRows.Err()
}

// GetRoleByID obtiene un rol (sin permisos) o (nil, nil) si no existe.
func (r *RoleRepo) GetRoleByID(id string) (*entity.Role, error) {
	var role entity.Role
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// ListPermissions devuelve el catálogo completo de permisos.
func (r *RoleRepo) ListPermissions() ([]entity.Permission, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, created_at FROM permissions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	var perms []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// GetPermissionsByIDs resuelve los permisos existentes entre los IDs dados;
// los desconocidos simplemente no aparecen.
func (r *RoleRepo) GetPermissionsByIDs(ids []string) ([]entity.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, created_at FROM permissions WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get permissions by ids: %w", err)
	}
	defer rows.Close()

	var perms []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// SetRolePermissions reemplaza el set completo de permisos del rol dentro de
// una transacción: delete + insert, para que la operación sea idempotente.
func (r *RoleRepo) SetRolePermissions(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	for _, permID := range permissionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (id, role_id, permission_id) VALUES ($1, $2, $3)`,
			uuid.New().String(), roleID, permID,
		)
		if err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

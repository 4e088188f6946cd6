// seed inicializa el catálogo de roles y permisos y crea el usuario
// superadministrador por defecto si todavía no existe. Es idempotente:
// puede ejecutarse varias veces sin duplicar filas.
//
// Uso:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/usuarios-api/pkg/config"
	"github.com/jhoicas/usuarios-api/pkg/password"
)

const (
	superAdminName     = "Super Admin"
	superAdminEmail    = "admin@admin.com"
	superAdminPassword = "admin123"
)

// grants define los permisos por defecto de cada rol.
var grants = map[string][]string{
	entity.RoleSuperAdmin: {entity.PermManageUsers, entity.PermManageCompanies, entity.PermViewReports},
	entity.RoleAdmin:      {entity.PermManageUsers, entity.PermViewReports},
	entity.RoleUser:       {},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargando configuración: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conectando a la base de datos: %w", err)
	}
	defer pool.Close()

	roleIDs := make(map[string]string)
	for _, name := range []string{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleUser} {
		id, err := ensureRow(ctx, pool, "roles", name)
		if err != nil {
			return fmt.Errorf("creando rol %s: %w", name, err)
		}
		roleIDs[name] = id
	}

	permIDs := make(map[string]string)
	for _, name := range []string{entity.PermManageUsers, entity.PermManageCompanies, entity.PermViewReports} {
		id, err := ensureRow(ctx, pool, "permissions", name)
		if err != nil {
			return fmt.Errorf("creando permiso %s: %w", name, err)
		}
		permIDs[name] = id
	}

	for role, perms := range grants {
		for _, perm := range perms {
			if err := ensureGrant(ctx, pool, roleIDs[role], permIDs[perm]); err != nil {
				return fmt.Errorf("asignando %s a %s: %w", perm, role, err)
			}
		}
	}

	created, err := ensureSuperAdmin(ctx, pool)
	if err != nil {
		return fmt.Errorf("creando superadministrador: %w", err)
	}

	if created {
		fmt.Printf("Superadministrador creado: %s\n", superAdminEmail)
	} else {
		fmt.Printf("Superadministrador ya existe: %s\n", superAdminEmail)
	}
	fmt.Println("Seed completado")
	return nil
}

// ensureRow inserta una fila con nombre único en la tabla dada y devuelve
// su id, haya sido creada ahora o antes.
func ensureRow(ctx context.Context, pool *pgxpool.Pool, table, name string) (string, error) {
	var id string
	err := pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, table), name).Scan(&id)
	if err == nil {
		return id, nil
	}
	id = uuid.New().String()
	_, err = pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, name, created_at) VALUES ($1, $2, now())
		             ON CONFLICT (name) DO NOTHING`, table), id, name)
	if err != nil {
		return "", err
	}
	// Otro proceso pudo haber insertado primero.
	err = pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, table), name).Scan(&id)
	return id, err
}

func ensureGrant(ctx context.Context, pool *pgxpool.Pool, roleID, permID string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO role_permissions (id, role_id, permission_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (role_id, permission_id) DO NOTHING`,
		uuid.New().String(), roleID, permID)
	return err
}

func ensureSuperAdmin(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, superAdminEmail).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := password.Hash(superAdminPassword)
	if err != nil {
		return false, err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, is_company_admin, active, company_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, TRUE, NULL, now(), now())`,
		uuid.New().String(), superAdminName, superAdminEmail, hash, entity.RoleSuperAdmin)
	if err != nil {
		return false, err
	}
	return true, nil
}

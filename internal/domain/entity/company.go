package entity

import "time"

// Company representa un tenant del sistema: una organización aislada que
// posee sus propios usuarios. La empresa tiene credenciales propias
// (email + password hasheada) independientes de las de sus usuarios.
type Company struct {
	ID           string
	Name         string
	Email        string // único entre todas las empresas
	PasswordHash string // bcrypt, nunca texto plano después de persistir
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package dto

import "time"

// RegisterUserRequest entrada para crear un usuario dentro de la empresa del
// caller (la empresa sale del principal autenticado, no del body).
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest entrada de actualización. Campos nil no se tocan.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	IsCompanyAdmin bool      `json:"isCompanyAdmin"`
	Active         bool      `json:"active"`
	CompanyID      *string   `json:"companyId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserSummary versión resumida para respuestas de registro.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserListResponse listado paginado de usuarios de la empresa.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser datos del usuario incluidos en la respuesta de login.
type LoginUser struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	CompanyID   *string `json:"companyId"`
	CompanyName *string `json:"companyName"`
}

// LoginResponse salida de login con el token firmado.
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
	Token   string    `json:"token"`
}

// ForgotPasswordRequest solicitud de recuperación de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest solicitud de reseteo de contraseña.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// VerifyTokenUser datos del principal devueltos por verify-token.
type VerifyTokenUser struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	CompanyID      *string `json:"companyId"`
	IsCompanyAdmin bool    `json:"isCompanyAdmin"`
}

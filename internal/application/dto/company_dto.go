package dto

import "time"

// RegisterCompanyRequest entrada del registro de empresa. Aprovisiona la
// empresa y su primer administrador en una sola operación.
type RegisterCompanyRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AdminName     string `json:"adminName"`
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
}

// UpdateCompanyRequest entrada de actualización. Campos nil no se tocan.
type UpdateCompanyRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
}

// CompanyResponse salida de una empresa (sin password).
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanySummary versión resumida para respuestas de registro.
type CompanySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterCompanyResponse salida del registro: empresa + su admin.
type RegisterCompanyResponse struct {
	Message string         `json:"message"`
	Company CompanySummary `json:"company"`
	Admin   UserSummary    `json:"admin"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Pagination Pagination        `json:"pagination"`
}

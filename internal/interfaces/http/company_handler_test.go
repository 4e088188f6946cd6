package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registroEmpresa() map[string]string {
	return map[string]string{
		"name":          "Nueva S.A.",
		"email":         "contacto@nueva.com",
		"password":      "empresa1",
		"adminName":     "Elena",
		"adminEmail":    "elena@nueva.com",
		"adminPassword": "secreto1",
	}
}

func TestCompanyRegisterHTTP_SuperadminCreaEmpresaYAdmin(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/companies/register", env.tokenFor(t, "sa"), registroEmpresa())

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "empresa creada exitosamente", data["message"])

	company := data["company"].(map[string]any)
	admin := data["admin"].(map[string]any)
	assert.Equal(t, "Nueva S.A.", company["name"])
	assert.Equal(t, "elena@nueva.com", admin["email"])
	assert.Equal(t, "admin", admin["role"])

	// el admin quedó persistido como administrador del nuevo tenant
	stored, err := env.users.GetByEmail("elena@nueva.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsCompanyAdmin)
	require.NotNil(t, stored.CompanyID)
	assert.Equal(t, company["id"], *stored.CompanyID)

	// y puede iniciar sesión de inmediato
	login := env.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "elena@nueva.com",
		"password": "secreto1",
	})
	defer login.Body.Close()
	assert.Equal(t, http.StatusOK, login.StatusCode)
}

func TestCompanyRegisterHTTP_NoSuperadmin_403(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/companies/register", env.tokenFor(t, "ca1"), registroEmpresa())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCompanyRegisterHTTP_EmailDuplicado_409(t *testing.T) {
	env := newTestEnv(t)
	in := registroEmpresa()
	in["email"] = "contacto@acme.com"

	resp := env.do(t, http.MethodPost, "/api/companies/register", env.tokenFor(t, "sa"), in)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "la empresa ya existe", body["message"])
}

func TestCompanyRegisterHTTP_ValidacionCamposFaltantes(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/companies/register", env.tokenFor(t, "sa"), map[string]string{
		"name": "Solo Nombre",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "datos inválidos", body["message"])
	assert.NotEmpty(t, body["details"])
}

func TestCompanyGetHTTP_Inexistente_404(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/companies/no-existe", env.tokenFor(t, "sa"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompanyUpdateHTTP_ActualizaCampos(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPut, "/api/companies/c1", env.tokenFor(t, "ca1"), map[string]any{
		"name": "Acme Renombrada",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	company := data["company"].(map[string]any)
	assert.Equal(t, "Acme Renombrada", company["name"])
}

func TestCompanyDeleteHTTP_SoloSuperadmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodDelete, "/api/companies/c2", env.tokenFor(t, "ca1"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/companies/c2", env.tokenFor(t, "sa"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, _ := env.companies.GetByID("c2")
	assert.Nil(t, stored)
}

package auth

import (
	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/pkg/jwt"
	"github.com/jhoicas/usuarios-api/pkg/password"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// UseCase caso de uso de autenticación: login y emisión de tokens.
type UseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, companies repository.CompanyRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, companies: companies, jwtCfg: jwtCfg}
}

// Login verifica email/password y emite el token con los claims de identidad
// y tenencia. El nombre de la empresa se desnormaliza en el token al momento
// de emisión. Devuelve domain.ErrUserNotFound si el email no existe y
// domain.ErrUnauthorized si la contraseña no coincide.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	companyName, err := uc.companyName(user)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpirationHours, jwt.Claims{
		UserID:         user.ID,
		Email:          user.Email,
		Role:           user.Role,
		CompanyID:      user.CompanyID,
		IsCompanyAdmin: user.IsCompanyAdmin,
		CompanyName:    companyName,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "inicio de sesión exitoso",
		User: dto.LoginUser{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			CompanyID:   user.CompanyID,
			CompanyName: companyName,
		},
		Token: token,
	}, nil
}

// companyName resuelve el nombre de la empresa del usuario; nil para el
// superadmin o si la empresa ya no existe.
func (uc *UseCase) companyName(user *entity.User) (*string, error) {
	if user.CompanyID == nil {
		return nil, nil
	}
	company, err := uc.companies.GetByID(*user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return &company.Name, nil
}

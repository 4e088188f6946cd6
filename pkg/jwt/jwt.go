package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores tipados de verificación. El caller decide el código HTTP;
// los tres casos terminan en 401 pero se loguean distinto.
var (
	ErrExpired          = errors.New("jwt: token expirado")
	ErrMalformed        = errors.New("jwt: token malformado")
	ErrSignatureInvalid = errors.New("jwt: firma inválida")
)

// Claims incluye los claims estándar JWT más la identidad y tenencia del principal.
// CompanyID y CompanyName son nil para el superadmin (no pertenece a ninguna empresa).
// Los claims son una foto al momento de emisión: el middleware debe recargar
// el usuario vivo en cada petición.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string  `json:"id"`
	Email          string  `json:"email"`
	Role           string  `json:"role"` // "superadmin" | "admin" | "user"
	CompanyID      *string `json:"companyId"`
	IsCompanyAdmin bool    `json:"isCompanyAdmin"`
	CompanyName    *string `json:"companyName"`
}

// Generate firma un token HS256 con los datos del principal.
// La vida del token es fija (expHours, 24 en producción) desde el momento de emisión.
func Generate(secret, issuer string, expHours int, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims decodificados.
// Toda falla de verificación se reduce a ErrExpired, ErrMalformed o
// ErrSignatureInvalid; nunca se filtra un error crudo de la librería.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			// Malformado, alg inesperado, nbf futuro: para el caller
			// todo es un token malformado.
			return nil, ErrMalformed
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}

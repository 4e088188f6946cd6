package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de trabajo bcrypt (coincide con bcrypt.DefaultCost).
const Cost = 10

// Hash genera el digest bcrypt de una contraseña en texto plano.
// El salt es aleatorio por llamada, el mismo plano nunca produce el mismo digest.
// Un fallo aquí es fatal para la escritura que lo invoca.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compara un texto plano contra un digest almacenado.
// Contraseña incorrecta devuelve false, nunca error.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

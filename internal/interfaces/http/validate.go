package http

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
)

// fieldErrors acumulador de validaciones: junta todos los campos fallidos
// en lugar de cortar en el primero.
type fieldErrors []dto.FieldError

func (v *fieldErrors) add(field, message string) {
	*v = append(*v, dto.FieldError{Field: field, Message: message})
}

func (v *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, field+" es requerido")
	}
}

func (v *fieldErrors) email(field, value string) {
	if value == "" {
		v.add(field, field+" es requerido")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "email inválido")
	}
}

// minLen cuenta caracteres, no bytes: "señal" tiene 5 caracteres.
func (v *fieldErrors) minLen(field, value string, min int) {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("%s debe tener al menos %d caracteres", field, min))
	}
}

// err devuelve el 400 con todos los detalles, o nil si no hubo fallas.
func (v fieldErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return BadRequest("datos inválidos", []dto.FieldError(v))
}

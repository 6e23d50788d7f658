// Package validate holds the field-level rules shared by the login and
// registration forms. Validators are stateless; each returns the
// user-facing message for the field, or "" when the value is valid.
package validate

import (
	"net/mail"
	"strings"
	"unicode"
)

// Email domains accepted for accounts.
var allowedEmailDomains = []string{"duocuc.cl", "profesor.duoc.cl"}

// NormalizeEmail applies the normalization used both by validation and by
// the user directory lookups, so the two can never disagree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Email checks syntax first, then the domain allow-list.
func Email(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "El correo no puede estar vacío"
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "El formato del correo es incorrecto"
	}
	lower := NormalizeEmail(trimmed)
	for _, d := range allowedEmailDomains {
		if strings.HasSuffix(lower, "@"+d) {
			return ""
		}
	}
	return "Solo se aceptan correos @duocuc.cl o @profesor.duoc.cl"
}

// Name validates first and last names: 4-20 characters, letters only.
func Name(name string) string {
	trimmed := strings.TrimSpace(name)
	runes := []rune(trimmed)
	if len(runes) < 4 || len(runes) > 20 {
		return "Debe tener entre 4 y 20 caracteres"
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return "Solo se permiten letras"
		}
	}
	return ""
}

// Password only requires a non-empty value.
func Password(password string) string {
	if strings.TrimSpace(password) == "" {
		return "La contraseña no puede estar vacía"
	}
	return ""
}

// ConfirmPassword requires an exact match with the password.
func ConfirmPassword(password, confirm string) string {
	if strings.TrimSpace(confirm) == "" {
		return "Debe confirmar la contraseña"
	}
	if confirm != password {
		return "Las contraseñas no coinciden"
	}
	return ""
}

// Address validates length between 5 and 40 characters.
func Address(address string) string {
	runes := []rune(strings.TrimSpace(address))
	if len(runes) < 5 || len(runes) > 40 {
		return "Debe tener entre 5 y 40 caracteres"
	}
	return ""
}

// Phone is optional; when present it must be 8-9 digits.
func Phone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ""
	}
	runes := []rune(trimmed)
	if len(runes) < 8 || len(runes) > 9 {
		return "Debe tener entre 8 y 9 dígitos"
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return "Solo se permiten números"
		}
	}
	return ""
}

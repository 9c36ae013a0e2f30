package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError representa un error controlado con código HTTP, mensaje funcional
// y, cuando aplica, la lista de errores de validación que se muestra al usuario.
type AppError struct {
	Status  int
	Message string
	Errores []string
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// NewValidationError construye un 400 con la lista de errores; el mensaje es la lista unida por comas.
func NewValidationError(errores []string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: strings.Join(errores, ", "),
		Errores: append([]string(nil), errores...),
	}
}

// AsAppError convierte cualquier error en AppError.
// Un HTTPError del servicio remoto conserva su status y sus errores; el resto es 500.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	var he *HTTPError
	if errors.As(err, &he) {
		if len(he.Errores) > 0 {
			return &AppError{Status: he.Status, Message: strings.Join(he.Errores, ", "), Errores: he.Errores, Err: err}
		}
		status := he.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return &AppError{Status: status, Message: msg, Errores: []string{msg}, Err: err}
	}
	return &AppError{Status: http.StatusInternalServerError, Message: msg, Errores: []string{msg}, Err: err}
}

// MensajesDeError devuelve los errores que deben mostrarse al usuario: los reportados
// por el servicio (o por la validación local) o, si no hay, el mensaje genérico.
func MensajesDeError(err error, generico string) []string {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Errores) > 0 {
		return append([]string(nil), appErr.Errores...)
	}
	var he *HTTPError
	if errors.As(err, &he) && len(he.Errores) > 0 {
		return append([]string(nil), he.Errores...)
	}
	return []string{generico}
}

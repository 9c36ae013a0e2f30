package helpers

import (
	"net/http"

	internaldto "github.com/cocode/gestion_mid/internal/dto"
	"github.com/cocode/gestion_mid/models/requestresponse"
)

// Ok construye una respuesta estándar exitosa.
func Ok(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// Created construye una respuesta 201 con el mensaje de la operación.
func Created(message string, data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusCreated, message, data)
}

// Fail construye una respuesta estándar de error.
func Fail(status int, message string) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, nil)
}

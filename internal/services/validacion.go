package services

import (
	"errors"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// mensajesCampo traduce el campo que falló al mensaje que ve el usuario.
// Los textos siguen los del servicio de gestión para que ambos lados coincidan.
var mensajesCampo = map[string]string{
	"DPI":         "DPI debe ser un número de 13 dígitos.",
	"Nombre":      "El nombre no puede estar vacío.",
	"Email":       "Correo electrónico inválido.",
	"Telefono":    "El teléfono debe ser numérico con una longitud válida.",
	"Estado":      "El estado debe ser Activo o Inactivo.",
	"Rol":         "Rol inválido.",
	"Descripcion": "La descripción es obligatoria.",
	"Monto":       "El monto debe ser mayor que cero.",
	"MontoPagado": "El monto debe ser mayor que cero.",
	"FechaLimite": "La fecha límite debe tener el formato AAAA-MM-DD.",
	"Fecha":       "La fecha debe tener el formato AAAA-MM-DD.",
	"FechaPago":   "La fecha de pago debe tener el formato AAAA-MM-DD.",
	"FechaInicio": "La fecha de inicio debe tener el formato AAAA-MM-DD.",
	"FechaFin":    "La fecha de fin debe tener el formato AAAA-MM-DD.",
	"PersonaID":   "Debe seleccionar una persona.",
	"CuotaID":     "Debe seleccionar una cuota.",
	"DerechoID":   "Debe seleccionar un derecho.",
}

func validador() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("rol", func(fl validator.FieldLevel) bool {
			return models.EsRolValido(fl.Field().String())
		})
		_ = v.RegisterValidation("fecha", func(fl validator.FieldLevel) bool {
			return esFecha(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func esFecha(s string) bool {
	_, err := time.Parse(models.FormatoFecha, s)
	return err == nil
}

// Validar aplica las reglas declaradas en los tags del formulario.
// Devuelve un AppError 400 con un mensaje por campo, o nil.
func Validar(form interface{}) error {
	err := validador().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return helpers.NewAppError(http.StatusBadRequest, "formulario inválido", err)
	}

	errores := make([]string, 0, len(verrs))
	vistos := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		msg, ok := mensajesCampo[fe.StructField()]
		if !ok {
			msg = fe.StructField() + " inválido."
		}
		if vistos[msg] {
			continue
		}
		vistos[msg] = true
		errores = append(errores, msg)
	}
	return helpers.NewValidationError(errores)
}

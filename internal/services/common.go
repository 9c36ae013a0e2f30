package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cocode/gestion_mid/helpers"
)

// Mensajes que ve el usuario de la consola.
const (
	MsgErrorCargarPersonas  = "Error al cargar personas."
	MsgPersonaInactiva      = "¡Esta persona está inactiva y no se puede modificar!"
	MsgPersonaCreada        = "Persona creada."
	MsgPersonaActualizada   = "Persona actualizada."
	MsgErrorGuardar         = "Error al guardar."
	MsgConfirmarInactivarP  = "¿Marcar esta persona como inactiva?"
	MsgPersonaInactivada    = "Persona inactivada y rol liberado."
	MsgErrorInactivar       = "Error al inactivar."
	MsgNombreVacio          = "El nombre no puede estar vacío."
	MsgDerechoCreado        = "Derecho creado."
	MsgDerechoActualizado   = "Derecho actualizado."
	MsgConfirmarInactivarD  = "¿Inactivar este derecho?"
	MsgDerechoInactivado    = "Derecho inactivado."
	MsgErrorCargarDerechos  = "Error al cargar derechos."
	MsgVinculacionExitosa   = "¡Vinculación exitosa!"
	MsgErrorServidor        = "Error de servidor"
	MsgCuotaCreada          = "Cuota creada exitosamente"
	MsgErrorCrearCuota      = "Error inesperado al crear la cuota."
	MsgErrorCargarCuotas    = "Error al cargar cuotas."
	MsgCamposObligatorios   = "Todos los campos son obligatorios."
	MsgPagoRegistrado       = "Pago registrado exitosamente"
	MsgErrorRegistrarPago   = "Error al registrar el pago."
	MsgErrorCargarPagos     = "Error al cargar pagos."
	MsgDerechoAsignado      = "Derecho asignado."
	MsgErrorAsignar         = "Error al asignar el derecho."
	MsgFechaFinAnterior     = "La fecha de fin no puede ser anterior a la fecha de inicio."
	MsgEgresoRegistrado     = "Egreso registrado."
	MsgErrorRegistrarEgreso = "Error al registrar el egreso."
	MsgErrorFinanzas        = "Error al consultar finanzas."
)

var (
	// ErrNoConfirmado indica que el usuario no confirmó una inactivación.
	ErrNoConfirmado = errors.New("operación no confirmada")
	// ErrPersonaInactiva se devuelve al intentar editar una persona inactiva.
	ErrPersonaInactiva = errors.New("persona inactiva")
	// ErrNoEncontrado se devuelve cuando el id no está en la colección cargada.
	ErrNoEncontrado = errors.New("registro no encontrado")
)

// Confirmador pregunta al usuario antes de una inactivación.
type Confirmador func(pregunta string) bool

// ConfirmarSi responde siempre lo mismo; sirve cuando la confirmación ya viene en la petición.
func ConfirmarSi(ok bool) Confirmador {
	return func(string) bool { return ok }
}

func noConfirmado(pregunta string) error {
	return helpers.NewAppError(http.StatusBadRequest, pregunta, ErrNoConfirmado)
}

func noEncontrado(que string) error {
	return helpers.NewAppError(http.StatusNotFound, que+" no encontrado", ErrNoEncontrado)
}

// fallo traduce el error de una mutación a los errores mostrables y al mensaje de la página.
// El servicio puede reportar varios errores de validación; sin ellos se usa el genérico.
func fallo(err error, generico string) ([]string, string, error) {
	errores := helpers.MensajesDeError(err, generico)
	appErr := helpers.AsAppError(err, generico)
	return errores, strings.Join(errores, ", "), appErr
}

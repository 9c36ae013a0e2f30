package controllers

import (
	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
	"github.com/cocode/gestion_mid/models"
)

// FinanzasController expone ingresos, egresos, fondos y la asignación de derechos.
type FinanzasController struct {
	gestionController
}

// GetIngresos
// @router /ingresos [get]
func (c *FinanzasController) GetIngresos() {
	out, err := internalservices.ListarIngresos(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorFinanzas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(out))
}

// GetTotalIngresos
// @router /ingresos/total [get]
func (c *FinanzasController) GetTotalIngresos() {
	total, err := internalservices.TotalIngresos(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorFinanzas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(internaldto.TotalDTO{Total: total}))
}

// GetEgresos
// @router /egresos [get]
func (c *FinanzasController) GetEgresos() {
	out, err := internalservices.ListarEgresos(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorFinanzas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(out))
}

// PostEgreso
// @Summary Registra un egreso; el servicio valida que haya fondos
// @router /egresos [post]
func (c *FinanzasController) PostEgreso() {
	var form models.EgresoForm
	if !c.parseBody(&form) {
		return
	}
	msg, err := internalservices.CrearEgreso(c.requestContext(), directorio(), form)
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorRegistrarEgreso)
		return
	}
	c.WriteJSON(internalhelpers.Created(msg, nil))
}

// GetTotalEgresos
// @router /egresos/total [get]
func (c *FinanzasController) GetTotalEgresos() {
	total, err := internalservices.TotalEgresos(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorFinanzas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(internaldto.TotalDTO{Total: total}))
}

// GetFondos
// @Summary Totales de ingresos y egresos y fondos disponibles
// @router /fondos [get]
func (c *FinanzasController) GetFondos() {
	resumen, err := internalservices.Resumen(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorFinanzas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(resumen))
}

// GetAsignaciones
// @router /asignaciones [get]
func (c *FinanzasController) GetAsignaciones() {
	out, err := internalservices.ListarAsignaciones(c.requestContext(), directorio())
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorServidor)
		return
	}
	c.WriteJSON(internalhelpers.Ok(out))
}

// PostAsignacion
// @Summary Asigna un derecho a una persona
// @router /asignaciones [post]
func (c *FinanzasController) PostAsignacion() {
	var body models.PersonaDerecho
	if !c.parseBody(&body) {
		return
	}
	msg, err := internalservices.AsignarDerecho(c.requestContext(), directorio(), body)
	if err != nil {
		c.RespondError(err, internalservices.MsgErrorAsignar)
		return
	}
	c.WriteJSON(internalhelpers.Created(msg, nil))
}

package controllers

import (
	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
	"github.com/cocode/gestion_mid/models"
)

// CuotasController lista y crea cuotas.
type CuotasController struct {
	gestionController
}

// GetListado
// @Summary Lista las cuotas
// @router /cuotas [get]
func (c *CuotasController) GetListado() {
	p := internalservices.NuevaPaginaCuotas(directorio())
	if err := p.Cargar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarCuotas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(p.Cuotas))
}

// Post
// @Summary Crea una cuota
// @router /cuotas [post]
func (c *CuotasController) Post() {
	var form models.CuotaForm
	if !c.parseBody(&form) {
		return
	}
	p := internalservices.NuevaPaginaCuotas(directorio())
	if err := p.Crear(c.requestContext(), form); err != nil {
		c.RespondError(err, internalservices.MsgErrorCrearCuota)
		return
	}
	c.WriteJSON(internalhelpers.Created(p.Mensaje, internaldto.MutacionDTO[models.Cuota]{Mensaje: p.Mensaje, Items: p.Cuotas}))
}

package controllers

import (
	"net/http"
	"strings"

	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
	"github.com/cocode/gestion_mid/models"
)

// DerechosController expone la pantalla de derechos y la vinculación de cuotas.
type DerechosController struct {
	gestionController
}

func (c *DerechosController) cargar() (*internalservices.PaginaDerechos, bool) {
	p := internalservices.NuevaPaginaDerechos(directorio())
	if err := p.Cargar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarDerechos)
		return nil, false
	}
	return p, true
}

// GetListado
// @Summary Listado de derechos filtrado y ordenado por nombre
// @Param filtro query string false "texto a buscar en el nombre"
// @Param direccion query string false "asc | desc"
// @Param alternar query string false "Nombre"
// @router /derechos [get]
func (c *DerechosController) GetListado() {
	p, ok := c.cargar()
	if !ok {
		return
	}
	p.Listado.Filtro = c.GetString("filtro")

	if dir := strings.ToLower(strings.TrimSpace(c.GetString("direccion"))); dir != "" {
		if err := p.Listado.FijarOrden("Nombre", internalservices.Direccion(dir)); err != nil {
			c.RespondError(err, "orden inválido")
			return
		}
	}
	if alternar := strings.TrimSpace(c.GetString("alternar")); alternar != "" {
		if err := p.Listado.AlternarOrden(alternar); err != nil {
			c.RespondError(err, "orden inválido")
			return
		}
	}

	c.WriteJSON(internalhelpers.Ok(listado(p.Derechos, p.Listado)))
}

// Post
// @Summary Crea un derecho
// @router /derechos [post]
func (c *DerechosController) Post() {
	var form models.DerechoForm
	if !c.parseBody(&form) {
		return
	}
	p := internalservices.NuevaPaginaDerechos(directorio())
	p.Form = form
	if err := p.Enviar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorGuardar)
		return
	}
	c.WriteJSON(internalhelpers.Created(p.Mensaje, internaldto.MutacionDTO[models.Derecho]{Mensaje: p.Mensaje, Items: p.Vista()}))
}

// Put
// @Summary Renombra un derecho
// @Param id path int true "ID_Derecho"
// @router /derechos/:id [put]
func (c *DerechosController) Put() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	var form models.DerechoForm
	if !c.parseBody(&form) {
		return
	}
	p, ok := c.cargar()
	if !ok {
		return
	}
	if err := p.Editar(id); err != nil {
		c.RespondError(err, "derecho no encontrado")
		return
	}
	p.Form = form
	if err := p.Enviar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorGuardar)
		return
	}
	c.RespondSuccess(http.StatusOK, p.Mensaje, internaldto.MutacionDTO[models.Derecho]{Mensaje: p.Mensaje, Items: p.Vista()})
}

// Delete
// @Summary Inactiva un derecho
// @Param id path int true "ID_Derecho"
// @Param confirmar query bool true "confirmación explícita"
// @router /derechos/:id [delete]
func (c *DerechosController) Delete() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	p := internalservices.NuevaPaginaDerechos(directorio())
	confirmar := internalservices.ConfirmarSi(internalhelpers.QueryBool(c.Ctx, "confirmar"))
	if err := p.Inactivar(c.requestContext(), id, confirmar); err != nil {
		c.RespondError(err, internalservices.MsgErrorInactivar)
		return
	}
	c.RespondSuccess(http.StatusOK, p.Mensaje, internaldto.MutacionDTO[models.Derecho]{Mensaje: p.Mensaje, Items: p.Vista()})
}

// PostVincularCuota
// @Summary Vincula una cuota al derecho
// @Param id path int true "ID_Derecho"
// @router /derechos/:id/vincular-cuota [post]
func (c *DerechosController) PostVincularCuota() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	var body models.VinculoCuota
	if !c.parseBody(&body) {
		return
	}
	p := internalservices.NuevaPaginaDerechos(directorio())
	if err := p.VincularCuota(c.requestContext(), id, body.CuotaID.Int()); err != nil {
		c.RespondError(err, internalservices.MsgErrorServidor)
		return
	}
	c.RespondSuccess(http.StatusOK, p.Mensaje, internaldto.MutacionDTO[models.Derecho]{Mensaje: p.Mensaje, Items: p.Vista()})
}

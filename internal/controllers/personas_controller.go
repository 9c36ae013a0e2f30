package controllers

import (
	"net/http"
	"strings"

	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
	"github.com/cocode/gestion_mid/models"
)

// PersonasController expone la pantalla de personas.
type PersonasController struct {
	gestionController
}

// cargar arma la página con la colección ya traída del servicio.
func (c *PersonasController) cargar() (*internalservices.PaginaPersonas, bool) {
	p := internalservices.NuevaPaginaPersonas(directorio())
	if err := p.Cargar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarPersonas)
		return nil, false
	}
	return p, true
}

// GetListado
// @Summary Listado de personas filtrado y ordenado
// @Param filtro query string false "texto a buscar en nombre o DPI"
// @Param orden query string false "Nombre | Rol"
// @Param direccion query string false "asc | desc"
// @Param alternar query string false "clave cuyo orden se alterna"
// @router /personas [get]
func (c *PersonasController) GetListado() {
	p, ok := c.cargar()
	if !ok {
		return
	}
	p.Listado.Filtro = c.GetString("filtro")

	if orden := strings.TrimSpace(c.GetString("orden")); orden != "" {
		dir := internalservices.Direccion(strings.ToLower(strings.TrimSpace(c.GetString("direccion"))))
		if err := p.Listado.FijarOrden(orden, dir); err != nil {
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

	c.WriteJSON(internalhelpers.Ok(listado(p.Personas, p.Listado)))
}

// GetRolesDisponibles
// @Summary Roles que pueden asignarse en el formulario
// @Param editando query int false "id de la persona en edición"
// @router /personas/roles-disponibles [get]
func (c *PersonasController) GetRolesDisponibles() {
	editando, err := internalhelpers.QueryInt(c.Ctx, "editando")
	if err != nil {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, err.Error()))
		return
	}
	p, ok := c.cargar()
	if !ok {
		return
	}
	if editando > 0 {
		if err := p.Editar(editando); err != nil {
			c.RespondError(err, internalservices.MsgPersonaInactiva)
			return
		}
	}
	c.WriteJSON(internalhelpers.Ok(internaldto.RolesDTO{Roles: p.RolesDisponibles()}))
}

// Post
// @Summary Crea una persona
// @router /personas [post]
func (c *PersonasController) Post() {
	var form models.PersonaForm
	if !c.parseBody(&form) {
		return
	}
	p, ok := c.cargar()
	if !ok {
		return
	}
	p.Form = form
	if err := p.Enviar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorGuardar)
		return
	}
	c.WriteJSON(internalhelpers.Created(p.Mensaje, internaldto.MutacionDTO[models.Persona]{Mensaje: p.Mensaje, Items: p.Vista()}))
}

// Put
// @Summary Actualiza una persona activa
// @Param id path int true "ID_Persona"
// @router /personas/:id [put]
func (c *PersonasController) Put() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	var form models.PersonaForm
	if !c.parseBody(&form) {
		return
	}
	p, ok := c.cargar()
	if !ok {
		return
	}
	if err := p.Editar(id); err != nil {
		c.RespondError(err, internalservices.MsgPersonaInactiva)
		return
	}
	p.Form = form
	if err := p.Enviar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorGuardar)
		return
	}
	c.RespondSuccess(http.StatusOK, p.Mensaje, internaldto.MutacionDTO[models.Persona]{Mensaje: p.Mensaje, Items: p.Vista()})
}

// Delete
// @Summary Inactiva una persona y libera su rol
// @Param id path int true "ID_Persona"
// @Param confirmar query bool true "confirmación explícita"
// @router /personas/:id [delete]
func (c *PersonasController) Delete() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	p := internalservices.NuevaPaginaPersonas(directorio())
	confirmar := internalservices.ConfirmarSi(internalhelpers.QueryBool(c.Ctx, "confirmar"))
	if err := p.Inactivar(c.requestContext(), id, confirmar); err != nil {
		c.RespondError(err, internalservices.MsgErrorInactivar)
		return
	}
	c.RespondSuccess(http.StatusOK, p.Mensaje, internaldto.MutacionDTO[models.Persona]{Mensaje: p.Mensaje, Items: p.Vista()})
}

package controllers

import (
	stdctx "context"
	"net/http"

	rootcontrollers "github.com/cocode/gestion_mid/controllers"
	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
)

// directorio se resuelve en cada petición para que la configuración se lea
// después de que el proceso haya arrancado.
var directorio = internalservices.DirectorioPorDefecto

// gestionController agrega a BaseController lo que comparten las pantallas de gestión.
type gestionController struct {
	rootcontrollers.BaseController
}

func (c *gestionController) requestContext() stdctx.Context {
	return internalhelpers.RequestContext(c.Ctx)
}

func (c *gestionController) paramID() (int, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, err.Error()))
		return 0, false
	}
	return id, true
}

func (c *gestionController) parseBody(out interface{}) bool {
	if err := c.ParseJSONBody(out); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return false
	}
	return true
}

func saldoDTO(s internalservices.Saldo) internaldto.SaldoDTO {
	return internaldto.SaldoDTO{
		PersonaID:     s.PersonaID,
		CuotaID:       s.CuotaID,
		MontoRestante: s.MontoRestante,
		Estado:        s.Estado,
	}
}

// listado proyecta la colección y anuncia las claves por las que se puede ordenar.
func listado[T any](items []T, l *internalservices.Listado[T]) internaldto.ListadoDTO[T] {
	vista := l.Proyectar(items)
	return internaldto.ListadoDTO[T]{
		Items:     vista,
		Total:     len(vista),
		Filtro:    l.Filtro,
		Orden:     l.Orden.Clave,
		Direccion: string(l.Orden.Direccion),
		Claves:    l.Claves(),
	}
}

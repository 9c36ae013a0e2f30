package controllers

import (
	"net/http"

	internaldto "github.com/cocode/gestion_mid/internal/dto"
	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"
	internalservices "github.com/cocode/gestion_mid/internal/services"
	"github.com/cocode/gestion_mid/models"
)

// PagosController registra pagos y consulta saldos por persona y cuota.
type PagosController struct {
	gestionController
}

// GetListado
// @Summary Historial de pagos
// @router /pagos [get]
func (c *PagosController) GetListado() {
	p := internalservices.NuevaPaginaPagos(directorio())
	if err := p.CargarPagos(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarPagos)
		return
	}
	c.WriteJSON(internalhelpers.Ok(p.Pagos))
}

// GetSaldo
// @Summary Saldo de una persona sobre una cuota
// @Description Sin pagos registrados el saldo es el monto completo y el estado Pendiente.
// @Param persona query int true "ID_Persona"
// @Param cuota query int true "ID_Cuota"
// @router /pagos/saldo [get]
func (c *PagosController) GetSaldo() {
	personaID, err := internalhelpers.QueryInt(c.Ctx, "persona")
	if err != nil {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, err.Error()))
		return
	}
	cuotaID, err := internalhelpers.QueryInt(c.Ctx, "cuota")
	if err != nil {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, err.Error()))
		return
	}
	if personaID <= 0 || cuotaID <= 0 {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, "persona y cuota son requeridos"))
		return
	}

	p := internalservices.NuevaPaginaPagos(directorio())
	if err := p.Cargar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarCuotas)
		return
	}
	c.WriteJSON(internalhelpers.Ok(saldoDTO(p.Seleccionar(c.requestContext(), personaID, cuotaID))))
}

// Post
// @Summary Registra un pago y devuelve el saldo consultado de nuevo
// @router /pagos [post]
func (c *PagosController) Post() {
	var form models.PagoForm
	if !c.parseBody(&form) {
		return
	}
	p := internalservices.NuevaPaginaPagos(directorio())
	if err := p.Cargar(c.requestContext()); err != nil {
		c.RespondError(err, internalservices.MsgErrorCargarCuotas)
		return
	}
	if err := p.Registrar(c.requestContext(), form); err != nil {
		c.RespondError(err, internalservices.MsgErrorRegistrarPago)
		return
	}
	c.WriteJSON(internalhelpers.Created(p.Mensaje, internaldto.PagoRegistradoDTO{Mensaje: p.Mensaje, Saldo: saldoDTO(p.Saldo)}))
}

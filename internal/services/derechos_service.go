package services

import (
	"context"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
)

// PaginaDerechos es el estado de la pantalla de derechos.
type PaginaDerechos struct {
	dir Directorio

	Derechos   []models.Derecho
	Form       models.DerechoForm
	Editando   bool
	IDEditando int
	Listado    *Listado[models.Derecho]
	Mensaje    string
	Errores    []string
}

func NuevaPaginaDerechos(dir Directorio) *PaginaDerechos {
	return &PaginaDerechos{
		dir:      dir,
		Derechos: []models.Derecho{},
		Listado:  NuevoListadoDerechos(),
	}
}

// Cargar trae los derechos desde el servicio.
func (p *PaginaDerechos) Cargar(ctx context.Context) error {
	derechos, err := p.dir.ListDerechos(ctx)
	if err != nil {
		p.Mensaje = MsgErrorCargarDerechos
		return helpers.AsAppError(err, MsgErrorCargarDerechos)
	}
	p.Derechos = derechos
	return nil
}

// Vista devuelve la proyección filtrada y ordenada.
func (p *PaginaDerechos) Vista() []models.Derecho {
	return p.Listado.Proyectar(p.Derechos)
}

// Editar copia el nombre del derecho al borrador.
func (p *PaginaDerechos) Editar(id int) error {
	for _, d := range p.Derechos {
		if d.ID == id {
			p.Form = models.DerechoForm{Nombre: d.Nombre}
			p.Editando = true
			p.IDEditando = id
			p.Mensaje = ""
			p.Errores = nil
			return nil
		}
	}
	return noEncontrado("derecho")
}

// Cancelar sale del modo edición.
func (p *PaginaDerechos) Cancelar() {
	p.resetForm()
	p.Mensaje = ""
	p.Errores = nil
}

func (p *PaginaDerechos) resetForm() {
	p.Form = models.DerechoForm{}
	p.Editando = false
	p.IDEditando = 0
}

// Enviar crea o renombra el derecho y recarga la colección.
func (p *PaginaDerechos) Enviar(ctx context.Context) error {
	p.Errores = nil
	p.Form.Normalize()
	if err := Validar(p.Form); err != nil {
		p.Mensaje = MsgNombreVacio
		p.Errores = []string{MsgNombreVacio}
		return helpers.NewValidationError(p.Errores)
	}

	var err error
	exito := MsgDerechoCreado
	if p.Editando {
		_, err = p.dir.UpdateDerecho(ctx, p.IDEditando, p.Form)
		exito = MsgDerechoActualizado
	} else {
		_, err = p.dir.CreateDerecho(ctx, p.Form)
	}
	if err != nil {
		var appErr error
		p.Errores, p.Mensaje, appErr = fallo(err, MsgErrorGuardar)
		return appErr
	}

	logs.Info("derecho guardado", "editando", p.Editando, "id", p.IDEditando, "nombre", p.Form.Nombre)
	p.Mensaje = exito
	p.resetForm()
	p.recargar(ctx)
	return nil
}

// Inactivar marca el derecho como inactivo tras confirmarlo.
func (p *PaginaDerechos) Inactivar(ctx context.Context, id int, confirmar Confirmador) error {
	if confirmar == nil || !confirmar(MsgConfirmarInactivarD) {
		return noConfirmado(MsgConfirmarInactivarD)
	}
	if _, err := p.dir.DeleteDerecho(ctx, id); err != nil {
		p.Mensaje = MsgErrorInactivar
		return helpers.AsAppError(err, MsgErrorInactivar)
	}

	logs.Info("derecho inactivado", "id", id)
	p.Mensaje = MsgDerechoInactivado
	if p.Editando && p.IDEditando == id {
		p.resetForm()
	}
	p.recargar(ctx)
	return nil
}

// VincularCuota enlaza una cuota al derecho y recarga los derechos.
func (p *PaginaDerechos) VincularCuota(ctx context.Context, derechoID, cuotaID int) error {
	p.Errores = nil
	p.Mensaje = ""
	vinculo := models.VinculoCuota{DerechoID: models.FlexInt(derechoID), CuotaID: models.FlexInt(cuotaID)}
	if err := Validar(vinculo); err != nil {
		p.Errores = helpers.MensajesDeError(err, MsgErrorServidor)
		return err
	}

	if _, err := p.dir.VincularCuota(ctx, derechoID, cuotaID); err != nil {
		var appErr error
		p.Errores, p.Mensaje, appErr = fallo(err, MsgErrorServidor)
		return appErr
	}

	logs.Info("cuota vinculada", "derecho", derechoID, "cuota", cuotaID)
	p.Mensaje = MsgVinculacionExitosa
	p.recargar(ctx)
	return nil
}

func (p *PaginaDerechos) recargar(ctx context.Context) {
	previo := p.Mensaje
	if err := p.Cargar(ctx); err != nil {
		logs.Warn("recarga de derechos fallida", "err", err)
		p.Mensaje = previo + " " + MsgErrorCargarDerechos
	}
}

package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
)

// PaginaPersonas es el estado de la pantalla de personas: colección, borrador,
// modo edición, listado y mensajes. La usa un solo llamador a la vez.
type PaginaPersonas struct {
	dir Directorio
	// rol guardado de la persona en edición; el borrador puede traer otro.
	rolEditando string

	Personas   []models.Persona
	Form       models.PersonaForm
	Editando   bool
	IDEditando int
	Listado    *Listado[models.Persona]
	Mensaje    string
	Errores    []string
}

func NuevaPaginaPersonas(dir Directorio) *PaginaPersonas {
	return &PaginaPersonas{
		dir:      dir,
		Personas: []models.Persona{},
		Form:     models.NuevaPersonaForm(),
		Listado:  NuevoListadoPersonas(),
	}
}

// Cargar trae la colección completa desde el servicio.
func (p *PaginaPersonas) Cargar(ctx context.Context) error {
	personas, err := p.dir.ListPersonas(ctx)
	if err != nil {
		p.Mensaje = MsgErrorCargarPersonas
		return helpers.AsAppError(err, MsgErrorCargarPersonas)
	}
	p.Personas = personas
	return nil
}

// Vista devuelve la proyección filtrada y ordenada.
func (p *PaginaPersonas) Vista() []models.Persona {
	return p.Listado.Proyectar(p.Personas)
}

// RolesDisponibles para el borrador actual. Al editar sólo se conserva el rol
// que la persona tenía guardado, no el que trae el borrador.
func (p *PaginaPersonas) RolesDisponibles() []string {
	return RolesDisponibles(p.Personas, p.Editando, p.IDEditando, p.rolEditando)
}

// Buscar localiza una persona en la colección cargada.
func (p *PaginaPersonas) Buscar(id int) (models.Persona, bool) {
	for _, per := range p.Personas {
		if per.ID == id {
			return per, true
		}
	}
	return models.Persona{}, false
}

// Editar copia la persona al borrador y entra en modo edición.
// Una persona inactiva no se edita.
func (p *PaginaPersonas) Editar(id int) error {
	per, ok := p.Buscar(id)
	if !ok {
		return noEncontrado("persona")
	}
	if !per.Activa() {
		p.Mensaje = MsgPersonaInactiva
		return helpers.NewAppError(http.StatusConflict, MsgPersonaInactiva, ErrPersonaInactiva)
	}
	p.Form = models.FormDePersona(per)
	p.Editando = true
	p.IDEditando = per.ID
	p.rolEditando = per.Rol
	p.Mensaje = ""
	p.Errores = nil
	return nil
}

// Cancelar sale del modo edición y limpia el borrador.
func (p *PaginaPersonas) Cancelar() {
	p.resetForm()
	p.Mensaje = ""
	p.Errores = nil
}

func (p *PaginaPersonas) resetForm() {
	p.Form = models.NuevaPersonaForm()
	p.Editando = false
	p.IDEditando = 0
	p.rolEditando = ""
}

func (p *PaginaPersonas) validar() error {
	p.Form.Normalize()
	var errores []string
	if err := Validar(p.Form); err != nil {
		errores = helpers.MensajesDeError(err, MsgErrorGuardar)
	}
	if models.EsRolValido(p.Form.Rol) && !contiene(p.RolesDisponibles(), p.Form.Rol) {
		errores = append(errores, fmt.Sprintf("El rol '%s' ya está asignado a otra persona.", p.Form.Rol))
	}
	if len(errores) > 0 {
		return helpers.NewValidationError(errores)
	}
	return nil
}

// Enviar crea o actualiza según el modo y recarga la colección.
// Si falla, el borrador y el modo edición se conservan.
func (p *PaginaPersonas) Enviar(ctx context.Context) error {
	p.Errores = nil
	if err := p.validar(); err != nil {
		p.Errores = helpers.MensajesDeError(err, MsgErrorGuardar)
		p.Mensaje = ""
		return err
	}

	var err error
	exito := MsgPersonaCreada
	if p.Editando {
		_, err = p.dir.UpdatePersona(ctx, p.IDEditando, p.Form)
		exito = MsgPersonaActualizada
	} else {
		_, err = p.dir.CreatePersona(ctx, p.Form)
	}
	if err != nil {
		var appErr error
		p.Errores, p.Mensaje, appErr = fallo(err, MsgErrorGuardar)
		return appErr
	}

	logs.Info("persona guardada", "editando", p.Editando, "id", p.IDEditando, "dpi", p.Form.DPI)
	p.Mensaje = exito
	p.resetForm()
	p.recargar(ctx)
	return nil
}

// Inactivar marca la persona como inactiva tras confirmarlo; el servicio libera su rol.
func (p *PaginaPersonas) Inactivar(ctx context.Context, id int, confirmar Confirmador) error {
	if confirmar == nil || !confirmar(MsgConfirmarInactivarP) {
		return noConfirmado(MsgConfirmarInactivarP)
	}
	if _, err := p.dir.DeletePersona(ctx, id); err != nil {
		p.Mensaje = MsgErrorInactivar
		return helpers.AsAppError(err, MsgErrorInactivar)
	}

	logs.Info("persona inactivada", "id", id)
	p.Mensaje = MsgPersonaInactivada
	p.recargar(ctx)
	if p.Editando && p.IDEditando == id {
		p.resetForm()
	}
	p.Form = models.NuevaPersonaForm()
	return nil
}

// recargar no revierte una mutación ya aplicada: si falla, sólo se avisa.
func (p *PaginaPersonas) recargar(ctx context.Context) {
	previo := p.Mensaje
	if err := p.Cargar(ctx); err != nil {
		logs.Warn("recarga de personas fallida", "err", err)
		p.Mensaje = previo + " " + MsgErrorCargarPersonas
	}
}

func contiene(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

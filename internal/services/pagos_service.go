package services

import (
	"context"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
)

// PaginaPagos es el estado de la pantalla de registro de pagos: personas y cuotas
// para los selectores, el par seleccionado y su saldo.
type PaginaPagos struct {
	dir        Directorio
	resolvedor *ResolvedorSaldo

	Personas  []models.Persona
	Cuotas    []models.Cuota
	Pagos     []models.Pago
	PersonaID int
	CuotaID   int
	Saldo     Saldo
	Mensaje   string
	Errores   []string
}

func NuevaPaginaPagos(dir Directorio) *PaginaPagos {
	return &PaginaPagos{
		dir:        dir,
		resolvedor: NuevoResolvedorSaldo(dir),
		Personas:   []models.Persona{},
		Cuotas:     []models.Cuota{},
		Pagos:      []models.Pago{},
	}
}

// Cargar trae personas y cuotas para los selectores.
func (p *PaginaPagos) Cargar(ctx context.Context) error {
	personas, err := p.dir.ListPersonas(ctx)
	if err != nil {
		p.Errores = []string{MsgErrorCargarPersonas}
		return helpers.AsAppError(err, MsgErrorCargarPersonas)
	}
	cuotas, err := p.dir.ListCuotas(ctx)
	if err != nil {
		p.Errores = []string{MsgErrorCargarCuotas}
		return helpers.AsAppError(err, MsgErrorCargarCuotas)
	}
	p.Personas = personas
	p.Cuotas = cuotas
	return nil
}

// CargarPagos trae el historial de pagos.
func (p *PaginaPagos) CargarPagos(ctx context.Context) error {
	pagos, err := p.dir.ListPagos(ctx)
	if err != nil {
		p.Errores = []string{MsgErrorCargarPagos}
		return helpers.AsAppError(err, MsgErrorCargarPagos)
	}
	p.Pagos = pagos
	return nil
}

// Seleccionar fija persona y cuota y vuelve a resolver el saldo.
func (p *PaginaPagos) Seleccionar(ctx context.Context, personaID, cuotaID int) Saldo {
	p.PersonaID = personaID
	p.CuotaID = cuotaID
	p.resolver(ctx)
	return p.Saldo
}

func (p *PaginaPagos) resolver(ctx context.Context) {
	if saldo, ok := p.resolvedor.Resolver(ctx, p.PersonaID, p.CuotaID, p.Cuotas); ok {
		p.Saldo = saldo
	}
}

// Registrar envía el pago y consulta de nuevo el saldo del par pagado.
func (p *PaginaPagos) Registrar(ctx context.Context, form models.PagoForm) error {
	p.Errores = nil
	p.Mensaje = ""
	form.Normalize()
	if form.PersonaID <= 0 || form.CuotaID <= 0 || form.MontoPagado.IsZero() || form.FechaPago == "" {
		p.Errores = []string{MsgCamposObligatorios}
		return helpers.NewValidationError(p.Errores)
	}
	var errores []string
	if !form.MontoPagado.IsPositive() {
		errores = append(errores, mensajesCampo["MontoPagado"])
	}
	if !esFecha(form.FechaPago) {
		errores = append(errores, mensajesCampo["FechaPago"])
	}
	if len(errores) > 0 {
		p.Errores = errores
		return helpers.NewValidationError(errores)
	}

	resp, err := p.dir.RegistrarPago(ctx, form)
	if err != nil {
		p.Errores = helpers.MensajesDeError(err, MsgErrorRegistrarPago)
		return helpers.AsAppError(err, MsgErrorRegistrarPago)
	}

	logs.Info("pago registrado", "persona", form.PersonaID.Int(), "cuota", form.CuotaID.Int(), "monto", form.MontoPagado.String())
	p.Mensaje = resp.Mensaje
	if p.Mensaje == "" {
		p.Mensaje = MsgPagoRegistrado
	}
	p.PersonaID = form.PersonaID.Int()
	p.CuotaID = form.CuotaID.Int()
	p.resolver(ctx)
	return nil
}

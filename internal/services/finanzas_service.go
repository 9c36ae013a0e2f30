package services

import (
	"context"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
	"github.com/shopspring/decimal"
)

// ResumenFinanzas agrupa los totales que calcula el servicio de gestión.
type ResumenFinanzas struct {
	TotalIngresos     decimal.Decimal `json:"total_ingresos"`
	TotalEgresos      decimal.Decimal `json:"total_egresos"`
	FondosDisponibles decimal.Decimal `json:"fondos_disponibles"`
}

// ListarIngresos devuelve los ingresos registrados.
func ListarIngresos(ctx context.Context, dir Directorio) ([]models.Ingreso, error) {
	out, err := dir.ListIngresos(ctx)
	if err != nil {
		return nil, helpers.AsAppError(err, MsgErrorFinanzas)
	}
	return out, nil
}

// ListarEgresos devuelve los egresos registrados.
func ListarEgresos(ctx context.Context, dir Directorio) ([]models.Egreso, error) {
	out, err := dir.ListEgresos(ctx)
	if err != nil {
		return nil, helpers.AsAppError(err, MsgErrorFinanzas)
	}
	return out, nil
}

func TotalIngresos(ctx context.Context, dir Directorio) (decimal.Decimal, error) {
	total, err := dir.TotalIngresos(ctx)
	if err != nil {
		return decimal.Zero, helpers.AsAppError(err, MsgErrorFinanzas)
	}
	return total, nil
}

func TotalEgresos(ctx context.Context, dir Directorio) (decimal.Decimal, error) {
	total, err := dir.TotalEgresos(ctx)
	if err != nil {
		return decimal.Zero, helpers.AsAppError(err, MsgErrorFinanzas)
	}
	return total, nil
}

// Resumen consulta los tres totales. Los fondos son los que reporta el servicio.
func Resumen(ctx context.Context, dir Directorio) (ResumenFinanzas, error) {
	var out ResumenFinanzas
	var err error
	if out.TotalIngresos, err = TotalIngresos(ctx, dir); err != nil {
		return ResumenFinanzas{}, err
	}
	if out.TotalEgresos, err = TotalEgresos(ctx, dir); err != nil {
		return ResumenFinanzas{}, err
	}
	fondos, err := dir.FondosDisponibles(ctx)
	if err != nil {
		return ResumenFinanzas{}, helpers.AsAppError(err, MsgErrorFinanzas)
	}
	out.FondosDisponibles = fondos
	return out, nil
}

// CrearEgreso registra un gasto. El servicio rechaza el egreso si no hay fondos.
func CrearEgreso(ctx context.Context, dir Directorio, form models.EgresoForm) (string, error) {
	form.Normalize()
	if err := Validar(form); err != nil {
		return "", err
	}
	resp, err := dir.CrearEgreso(ctx, form)
	if err != nil {
		return "", helpers.AsAppError(err, MsgErrorRegistrarEgreso)
	}
	logs.Info("egreso registrado", "monto", form.Monto.String(), "fecha", form.Fecha)
	if resp.Mensaje != "" {
		return resp.Mensaje, nil
	}
	return MsgEgresoRegistrado, nil
}

// ListarAsignaciones devuelve las asignaciones persona-derecho.
func ListarAsignaciones(ctx context.Context, dir Directorio) ([]models.PersonaDerecho, error) {
	out, err := dir.ListAsignaciones(ctx)
	if err != nil {
		return nil, helpers.AsAppError(err, MsgErrorServidor)
	}
	return out, nil
}

// AsignarDerecho asigna un derecho a una persona; el servicio preasigna las cuotas
// vinculadas al derecho.
func AsignarDerecho(ctx context.Context, dir Directorio, a models.PersonaDerecho) (string, error) {
	if a.FechaFin != nil && *a.FechaFin == "" {
		a.FechaFin = nil
	}
	if err := Validar(a); err != nil {
		return "", err
	}
	// Las fechas AAAA-MM-DD ya validadas se comparan como texto.
	if a.FechaFin != nil && *a.FechaFin < a.FechaInicio {
		return "", helpers.NewValidationError([]string{MsgFechaFinAnterior})
	}
	resp, err := dir.AsignarDerecho(ctx, a)
	if err != nil {
		return "", helpers.AsAppError(err, MsgErrorAsignar)
	}
	logs.Info("derecho asignado", "persona", a.PersonaID.Int(), "derecho", a.DerechoID.Int())
	if resp.Mensaje != "" {
		return resp.Mensaje, nil
	}
	return MsgDerechoAsignado, nil
}

package services

import (
	"context"

	"github.com/cocode/gestion_mid/internal/clients"
	"github.com/cocode/gestion_mid/models"

	"github.com/shopspring/decimal"
)

// Directorio es el contrato del servicio de gestión que consumen las páginas.
// *clients.GestionClient lo implementa; las pruebas usan un fake en memoria.
type Directorio interface {
	ListPersonas(ctx context.Context) ([]models.Persona, error)
	CreatePersona(ctx context.Context, form models.PersonaForm) (models.Mensaje, error)
	UpdatePersona(ctx context.Context, id int, form models.PersonaForm) (models.Mensaje, error)
	DeletePersona(ctx context.Context, id int) (models.Mensaje, error)

	ListDerechos(ctx context.Context) ([]models.Derecho, error)
	CreateDerecho(ctx context.Context, form models.DerechoForm) (models.Mensaje, error)
	UpdateDerecho(ctx context.Context, id int, form models.DerechoForm) (models.Mensaje, error)
	DeleteDerecho(ctx context.Context, id int) (models.Mensaje, error)
	VincularCuota(ctx context.Context, derechoID, cuotaID int) (models.Mensaje, error)

	ListCuotas(ctx context.Context) ([]models.Cuota, error)
	CreateCuota(ctx context.Context, form models.CuotaForm) (models.Mensaje, error)

	ListPagos(ctx context.Context) ([]models.Pago, error)
	RegistrarPago(ctx context.Context, form models.PagoForm) (models.Mensaje, error)
	SaldoCuota(ctx context.Context, cuotaID, personaID int) (models.SaldoCuota, error)

	ListAsignaciones(ctx context.Context) ([]models.PersonaDerecho, error)
	AsignarDerecho(ctx context.Context, asignacion models.PersonaDerecho) (models.Mensaje, error)

	ListIngresos(ctx context.Context) ([]models.Ingreso, error)
	TotalIngresos(ctx context.Context) (decimal.Decimal, error)
	ListEgresos(ctx context.Context) ([]models.Egreso, error)
	CrearEgreso(ctx context.Context, form models.EgresoForm) (models.Mensaje, error)
	TotalEgresos(ctx context.Context) (decimal.Decimal, error)
	FondosDisponibles(ctx context.Context) (decimal.Decimal, error)
}

var _ Directorio = (*clients.GestionClient)(nil)

// DirectorioPorDefecto devuelve el cliente remoto configurado.
func DirectorioPorDefecto() Directorio {
	return clients.Gestion()
}

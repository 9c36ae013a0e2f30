package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"
	rootservices "github.com/cocode/gestion_mid/services"

	"github.com/shopspring/decimal"
)

// GestionClient envuelve las operaciones contra el servicio de gestión (personas,
// derechos, cuotas, pagos, ingresos y egresos) que el MID necesita.
type GestionClient struct {
	cfg rootservices.Config
}

var (
	gestionClient     *GestionClient
	gestionClientOnce sync.Once
)

// Gestion devuelve el cliente singleton configurado desde GetConfig.
func Gestion() *GestionClient {
	gestionClientOnce.Do(func() {
		gestionClient = NewGestionClient(rootservices.GetConfig())
	})
	return gestionClient
}

// NewGestionClient construye un cliente con una configuración explícita.
func NewGestionClient(cfg rootservices.Config) *GestionClient {
	return &GestionClient{cfg: cfg}
}

func (c *GestionClient) url(elems ...string) string {
	return rootservices.BuildURL(c.cfg.GestionAPIBaseURL, elems...)
}

func (c *GestionClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return helpers.DoJSONWithHeaders(ctx, method, endpoint, helpers.HeadersDe(ctx), in, out, c.cfg.RequestTimeout)
}

func (c *GestionClient) mutate(ctx context.Context, method, endpoint string, in any) (models.Mensaje, error) {
	var msg models.Mensaje
	if err := c.do(ctx, method, endpoint, in, &msg); err != nil {
		return models.Mensaje{}, err
	}
	return msg, nil
}

// ---------- Personas ----------

// ListPersonas devuelve todas las personas, activas e inactivas.
func (c *GestionClient) ListPersonas(ctx context.Context) ([]models.Persona, error) {
	var out []models.Persona
	if err := c.do(ctx, http.MethodGet, c.url("personas"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Persona{}
	}
	return out, nil
}

// CreatePersona registra una persona nueva.
func (c *GestionClient) CreatePersona(ctx context.Context, form models.PersonaForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("personas"), form)
}

// UpdatePersona sobrescribe los campos de la persona id.
func (c *GestionClient) UpdatePersona(ctx context.Context, id int, form models.PersonaForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPut, c.url("personas", strconv.Itoa(id)), form)
}

// DeletePersona marca la persona como inactiva; el servicio libera su rol.
func (c *GestionClient) DeletePersona(ctx context.Context, id int) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodDelete, c.url("personas", strconv.Itoa(id)), nil)
}

// ---------- Derechos ----------

// ListDerechos devuelve los derechos registrados.
func (c *GestionClient) ListDerechos(ctx context.Context) ([]models.Derecho, error) {
	var out []models.Derecho
	if err := c.do(ctx, http.MethodGet, c.url("derechos"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Derecho{}
	}
	return out, nil
}

// CreateDerecho registra un derecho nuevo.
func (c *GestionClient) CreateDerecho(ctx context.Context, form models.DerechoForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("derechos"), form)
}

// UpdateDerecho renombra el derecho id.
func (c *GestionClient) UpdateDerecho(ctx context.Context, id int, form models.DerechoForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPut, c.url("derechos", strconv.Itoa(id)), form)
}

// DeleteDerecho inactiva el derecho id.
func (c *GestionClient) DeleteDerecho(ctx context.Context, id int) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodDelete, c.url("derechos", strconv.Itoa(id)), nil)
}

// VincularCuota enlaza una cuota al derecho.
func (c *GestionClient) VincularCuota(ctx context.Context, derechoID, cuotaID int) (models.Mensaje, error) {
	body := map[string]int{"ID_Cuota": cuotaID}
	return c.mutate(ctx, http.MethodPost, c.url("derechos", strconv.Itoa(derechoID), "vincular-cuota"), body)
}

// ---------- Cuotas ----------

// ListCuotas devuelve las cuotas registradas.
func (c *GestionClient) ListCuotas(ctx context.Context) ([]models.Cuota, error) {
	var out []models.Cuota
	if err := c.do(ctx, http.MethodGet, c.url("cuotas"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Cuota{}
	}
	return out, nil
}

// CreateCuota registra una cuota nueva.
func (c *GestionClient) CreateCuota(ctx context.Context, form models.CuotaForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("cuotas"), form)
}

// ---------- Pagos ----------

// ListPagos devuelve los pagos registrados.
func (c *GestionClient) ListPagos(ctx context.Context) ([]models.Pago, error) {
	var out []models.Pago
	if err := c.do(ctx, http.MethodGet, c.url("pagos"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Pago{}
	}
	return out, nil
}

// RegistrarPago registra un pago; el servicio genera el ingreso asociado.
func (c *GestionClient) RegistrarPago(ctx context.Context, form models.PagoForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("pagos"), form)
}

// SaldoCuota consulta el resumen de pagos de la persona sobre la cuota.
// Un 404 significa que todavía no existe asignación ni pagos para el par.
func (c *GestionClient) SaldoCuota(ctx context.Context, cuotaID, personaID int) (models.SaldoCuota, error) {
	values := url.Values{}
	values.Set("ID_Persona", strconv.Itoa(personaID))
	endpoint := c.url("pagos", "cuota", strconv.Itoa(cuotaID)) + "?" + values.Encode()

	var out models.SaldoCuota
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return models.SaldoCuota{}, err
	}
	return out, nil
}

// ---------- Asignación de derechos ----------

// ListAsignaciones devuelve las asignaciones persona-derecho.
func (c *GestionClient) ListAsignaciones(ctx context.Context) ([]models.PersonaDerecho, error) {
	var out []models.PersonaDerecho
	if err := c.do(ctx, http.MethodGet, c.url("persona_derecho"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.PersonaDerecho{}
	}
	return out, nil
}

// AsignarDerecho asigna un derecho a una persona y preasigna sus cuotas.
func (c *GestionClient) AsignarDerecho(ctx context.Context, asignacion models.PersonaDerecho) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("persona_derecho"), asignacion)
}

// ---------- Ingresos y egresos ----------

// ListIngresos devuelve los ingresos registrados.
func (c *GestionClient) ListIngresos(ctx context.Context) ([]models.Ingreso, error) {
	var out []models.Ingreso
	if err := c.do(ctx, http.MethodGet, c.url("ingresos"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Ingreso{}
	}
	return out, nil
}

// TotalIngresos devuelve la suma de ingresos.
func (c *GestionClient) TotalIngresos(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal `json:"total_ingresos"`
	}
	if err := c.do(ctx, http.MethodGet, c.url("ingresos", "total"), nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

// ListEgresos devuelve los egresos registrados.
func (c *GestionClient) ListEgresos(ctx context.Context) ([]models.Egreso, error) {
	var out []models.Egreso
	if err := c.do(ctx, http.MethodGet, c.url("egresos"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Egreso{}
	}
	return out, nil
}

// CrearEgreso registra un egreso; el servicio verifica fondos disponibles.
func (c *GestionClient) CrearEgreso(ctx context.Context, form models.EgresoForm) (models.Mensaje, error) {
	return c.mutate(ctx, http.MethodPost, c.url("egresos"), form)
}

// TotalEgresos devuelve la suma de egresos.
func (c *GestionClient) TotalEgresos(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal `json:"total_egresos"`
	}
	if err := c.do(ctx, http.MethodGet, c.url("egresos", "total"), nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

// FondosDisponibles devuelve ingresos menos egresos según el servicio.
func (c *GestionClient) FondosDisponibles(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Fondos decimal.Decimal `json:"fondos_disponibles"`
	}
	if err := c.do(ctx, http.MethodGet, c.url("fondos", "disponibles"), nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Fondos, nil
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

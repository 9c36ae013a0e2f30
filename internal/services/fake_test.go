package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/shopspring/decimal"
)

// fakeDirectorio reproduce en memoria las reglas del servicio de gestión que
// importan a las páginas: DPI único, roles únicos entre activos e inactivación
// que libera el rol.
type fakeDirectorio struct {
	mu sync.Mutex

	personas     []models.Persona
	derechos     []models.Derecho
	cuotas       []models.Cuota
	pagos        []models.Pago
	vinculos     map[int][]int
	asignaciones []models.PersonaDerecho
	ingresos     decimal.Decimal
	egresos      decimal.Decimal

	fallas    map[string]error
	saldoHook func(cuotaID, personaID int)
	llamadas  map[string]int
}

func newFakeDirectorio() *fakeDirectorio {
	return &fakeDirectorio{
		vinculos: map[int][]int{},
		fallas:   map[string]error{},
		llamadas: map[string]int{},
	}
}

func (f *fakeDirectorio) registrar(op string) error {
	f.llamadas[op]++
	return f.fallas[op]
}

func (f *fakeDirectorio) llamadasA(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.llamadas[op]
}

func (f *fakeDirectorio) ListPersonas(ctx context.Context) ([]models.Persona, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListPersonas"); err != nil {
		return nil, err
	}
	return append([]models.Persona(nil), f.personas...), nil
}

func (f *fakeDirectorio) validarPersona(id int, form models.PersonaForm) error {
	var errores []string
	for _, p := range f.personas {
		if p.ID == id {
			continue
		}
		if p.DPI == form.DPI {
			errores = append(errores, "El DPI ya está registrado.")
		}
		if form.Estado == models.EstadoActivo && p.Activa() && form.Rol != models.SinRol && p.Rol == form.Rol {
			errores = append(errores, "El rol '"+form.Rol+"' ya está asignado a otra persona.")
		}
	}
	if len(errores) > 0 {
		return &helpers.HTTPError{Status: http.StatusBadRequest, Errores: errores}
	}
	return nil
}

func (f *fakeDirectorio) CreatePersona(ctx context.Context, form models.PersonaForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("CreatePersona"); err != nil {
		return models.Mensaje{}, err
	}
	if err := f.validarPersona(0, form); err != nil {
		return models.Mensaje{}, err
	}
	f.personas = append(f.personas, models.Persona{
		ID: len(f.personas) + 1, DPI: form.DPI, Nombre: form.Nombre, Email: form.Email,
		Telefono: form.Telefono, Direccion: form.Direccion, Estado: form.Estado, Rol: form.Rol,
	})
	return models.Mensaje{Mensaje: "Persona creada exitosamente"}, nil
}

func (f *fakeDirectorio) UpdatePersona(ctx context.Context, id int, form models.PersonaForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("UpdatePersona"); err != nil {
		return models.Mensaje{}, err
	}
	if err := f.validarPersona(id, form); err != nil {
		return models.Mensaje{}, err
	}
	for i := range f.personas {
		if f.personas[i].ID == id {
			f.personas[i] = models.Persona{
				ID: id, DPI: form.DPI, Nombre: form.Nombre, Email: form.Email,
				Telefono: form.Telefono, Direccion: form.Direccion, Estado: form.Estado, Rol: form.Rol,
			}
			return models.Mensaje{Mensaje: "Persona actualizada"}, nil
		}
	}
	return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusNotFound, Mensaje: "Persona no encontrada"}
}

func (f *fakeDirectorio) DeletePersona(ctx context.Context, id int) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("DeletePersona"); err != nil {
		return models.Mensaje{}, err
	}
	for i := range f.personas {
		if f.personas[i].ID == id {
			f.personas[i].Estado = models.EstadoInactivo
			f.personas[i].Rol = models.SinRol
			return models.Mensaje{Mensaje: "Persona inactivada"}, nil
		}
	}
	return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusNotFound}
}

func (f *fakeDirectorio) ListDerechos(ctx context.Context) ([]models.Derecho, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListDerechos"); err != nil {
		return nil, err
	}
	return append([]models.Derecho(nil), f.derechos...), nil
}

func (f *fakeDirectorio) CreateDerecho(ctx context.Context, form models.DerechoForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("CreateDerecho"); err != nil {
		return models.Mensaje{}, err
	}
	for _, d := range f.derechos {
		if d.Nombre == form.Nombre {
			return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusBadRequest, Errores: []string{"Este derecho ya existe."}}
		}
	}
	f.derechos = append(f.derechos, models.Derecho{ID: len(f.derechos) + 1, Nombre: form.Nombre, Estado: models.EstadoActivo})
	return models.Mensaje{Mensaje: "Derecho creado"}, nil
}

func (f *fakeDirectorio) UpdateDerecho(ctx context.Context, id int, form models.DerechoForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("UpdateDerecho"); err != nil {
		return models.Mensaje{}, err
	}
	for i := range f.derechos {
		if f.derechos[i].ID == id {
			f.derechos[i].Nombre = form.Nombre
			return models.Mensaje{Mensaje: "Derecho actualizado"}, nil
		}
	}
	return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusNotFound}
}

func (f *fakeDirectorio) DeleteDerecho(ctx context.Context, id int) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("DeleteDerecho"); err != nil {
		return models.Mensaje{}, err
	}
	for i := range f.derechos {
		if f.derechos[i].ID == id {
			f.derechos[i].Estado = models.EstadoInactivo
			return models.Mensaje{Mensaje: "Derecho inactivado"}, nil
		}
	}
	return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusNotFound}
}

func (f *fakeDirectorio) VincularCuota(ctx context.Context, derechoID, cuotaID int) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("VincularCuota"); err != nil {
		return models.Mensaje{}, err
	}
	for _, c := range f.vinculos[derechoID] {
		if c == cuotaID {
			return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusBadRequest, Errores: []string{"La cuota ya está vinculada a este derecho."}}
		}
	}
	f.vinculos[derechoID] = append(f.vinculos[derechoID], cuotaID)
	return models.Mensaje{Mensaje: "Cuota vinculada"}, nil
}

func (f *fakeDirectorio) ListCuotas(ctx context.Context) ([]models.Cuota, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListCuotas"); err != nil {
		return nil, err
	}
	return append([]models.Cuota(nil), f.cuotas...), nil
}

func (f *fakeDirectorio) CreateCuota(ctx context.Context, form models.CuotaForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("CreateCuota"); err != nil {
		return models.Mensaje{}, err
	}
	f.cuotas = append(f.cuotas, models.Cuota{ID: len(f.cuotas) + 1, Descripcion: form.Descripcion, Monto: form.Monto, FechaLimite: form.FechaLimite})
	return models.Mensaje{}, nil
}

func (f *fakeDirectorio) ListPagos(ctx context.Context) ([]models.Pago, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListPagos"); err != nil {
		return nil, err
	}
	return append([]models.Pago(nil), f.pagos...), nil
}

func (f *fakeDirectorio) RegistrarPago(ctx context.Context, form models.PagoForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("RegistrarPago"); err != nil {
		return models.Mensaje{}, err
	}
	f.pagos = append(f.pagos, models.Pago{
		ID: len(f.pagos) + 1, PersonaID: form.PersonaID.Int(), CuotaID: form.CuotaID.Int(),
		FechaPago: form.FechaPago, MontoPagado: form.MontoPagado,
	})
	f.ingresos = f.ingresos.Add(form.MontoPagado)
	return models.Mensaje{Mensaje: "Pago registrado y ingreso generado"}, nil
}

func (f *fakeDirectorio) SaldoCuota(ctx context.Context, cuotaID, personaID int) (models.SaldoCuota, error) {
	if f.saldoHook != nil {
		f.saldoHook(cuotaID, personaID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("SaldoCuota"); err != nil {
		return models.SaldoCuota{}, err
	}
	cuota, ok := models.BuscarCuota(f.cuotas, cuotaID)
	if !ok {
		return models.SaldoCuota{}, &helpers.HTTPError{Status: http.StatusNotFound, Mensaje: "Cuota no encontrada"}
	}
	pagado := decimal.Zero
	hay := false
	for _, p := range f.pagos {
		if p.CuotaID == cuotaID && p.PersonaID == personaID {
			pagado = pagado.Add(p.MontoPagado)
			hay = true
		}
	}
	if !hay {
		return models.SaldoCuota{}, &helpers.HTTPError{Status: http.StatusNotFound, Mensaje: "Asignación no encontrada"}
	}
	restante := cuota.Monto.Sub(pagado)
	estado := models.EstadoCuotaParcial
	if !restante.IsPositive() {
		restante = decimal.Zero
		estado = models.EstadoCuotaPagado
	}
	return models.SaldoCuota{CuotaID: cuotaID, PagosRealizados: pagado, MontoRestante: restante, Estado: estado}, nil
}

func (f *fakeDirectorio) ListAsignaciones(ctx context.Context) ([]models.PersonaDerecho, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListAsignaciones"); err != nil {
		return nil, err
	}
	return append([]models.PersonaDerecho(nil), f.asignaciones...), nil
}

func (f *fakeDirectorio) AsignarDerecho(ctx context.Context, a models.PersonaDerecho) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("AsignarDerecho"); err != nil {
		return models.Mensaje{}, err
	}
	f.asignaciones = append(f.asignaciones, a)
	return models.Mensaje{Mensaje: "Derecho asignado y cuotas preasignadas"}, nil
}

func (f *fakeDirectorio) ListIngresos(ctx context.Context) ([]models.Ingreso, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListIngresos"); err != nil {
		return nil, err
	}
	return []models.Ingreso{{ID: 1, Fecha: "2025-01-10", Monto: f.ingresos, Fuente: "Pago"}}, nil
}

func (f *fakeDirectorio) TotalIngresos(ctx context.Context) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("TotalIngresos"); err != nil {
		return decimal.Zero, err
	}
	return f.ingresos, nil
}

func (f *fakeDirectorio) ListEgresos(ctx context.Context) ([]models.Egreso, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("ListEgresos"); err != nil {
		return nil, err
	}
	return []models.Egreso{}, nil
}

func (f *fakeDirectorio) CrearEgreso(ctx context.Context, form models.EgresoForm) (models.Mensaje, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("CrearEgreso"); err != nil {
		return models.Mensaje{}, err
	}
	if form.Monto.GreaterThan(f.ingresos.Sub(f.egresos)) {
		return models.Mensaje{}, &helpers.HTTPError{Status: http.StatusBadRequest, Errores: []string{"Fondos insuficientes."}}
	}
	f.egresos = f.egresos.Add(form.Monto)
	return models.Mensaje{Mensaje: "Egreso registrado"}, nil
}

func (f *fakeDirectorio) TotalEgresos(ctx context.Context) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("TotalEgresos"); err != nil {
		return decimal.Zero, err
	}
	return f.egresos, nil
}

func (f *fakeDirectorio) FondosDisponibles(ctx context.Context) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.registrar("FondosDisponibles"); err != nil {
		return decimal.Zero, err
	}
	return f.ingresos.Sub(f.egresos), nil
}

var _ Directorio = (*fakeDirectorio)(nil)

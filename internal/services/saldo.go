package services

import (
	"context"
	"sync"

	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
	"github.com/shopspring/decimal"
)

// Saldo es el saldo mostrado para el par persona-cuota seleccionado.
type Saldo struct {
	PersonaID     int
	CuotaID       int
	MontoRestante decimal.Decimal
	Estado        string
}

// ResolvedorSaldo consulta el resumen de pagos de una persona sobre una cuota.
// Cada consulta lleva un número de secuencia; una respuesta más vieja que la última
// emitida se descarta. Es seguro para uso concurrente.
type ResolvedorSaldo struct {
	dir Directorio

	mu       sync.Mutex
	emitida  uint64
	aplicada uint64
	actual   Saldo
}

func NuevoResolvedorSaldo(dir Directorio) *ResolvedorSaldo {
	return &ResolvedorSaldo{dir: dir}
}

// Actual devuelve el último saldo aplicado.
func (r *ResolvedorSaldo) Actual() Saldo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.actual
}

// Resolver consulta el saldo cuando persona, cuota y colección de cuotas están presentes.
// Devuelve el saldo vigente y si esta consulta fue la que lo fijó.
//
// Cualquier fallo remoto (incluido el 404 de "sin asignación") se interpreta como
// "sin pagos todavía": el saldo es el monto completo de la cuota y el estado Pendiente.
func (r *ResolvedorSaldo) Resolver(ctx context.Context, personaID, cuotaID int, cuotas []models.Cuota) (Saldo, bool) {
	if personaID <= 0 || cuotaID <= 0 || len(cuotas) == 0 {
		return r.Actual(), false
	}

	r.mu.Lock()
	r.emitida++
	seq := r.emitida
	r.mu.Unlock()

	saldo := Saldo{PersonaID: personaID, CuotaID: cuotaID}
	resumen, err := r.dir.SaldoCuota(ctx, cuotaID, personaID)
	if err == nil {
		saldo.MontoRestante = resumen.MontoRestante
		saldo.Estado = resumen.Estado
	} else {
		logs.Debug("saldo sin resumen remoto", "persona", personaID, "cuota", cuotaID, "err", err)
		if cuota, ok := models.BuscarCuota(cuotas, cuotaID); ok {
			saldo.MontoRestante = cuota.Monto
			saldo.Estado = models.EstadoCuotaPendiente
		} else {
			saldo.MontoRestante = decimal.Zero
			saldo.Estado = ""
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.emitida || seq <= r.aplicada {
		return r.actual, false
	}
	r.aplicada = seq
	r.actual = saldo
	return saldo, true
}

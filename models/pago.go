package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pago es un pago registrado contra una cuota de una persona.
type Pago struct {
	ID          int             `json:"ID_Pago"`
	PersonaID   int             `json:"ID_Persona"`
	CuotaID     int             `json:"ID_Cuota"`
	FechaPago   string          `json:"Fecha_Pago"`
	MontoPagado decimal.Decimal `json:"Monto_Pagado"`
	Estado      string          `json:"Estado,omitempty"`
}

// PagoForm es el cuerpo de POST /pagos.
type PagoForm struct {
	PersonaID   FlexInt         `json:"ID_Persona"`
	CuotaID     FlexInt         `json:"ID_Cuota"`
	MontoPagado decimal.Decimal `json:"Monto_Pagado"`
	FechaPago   string          `json:"Fecha_Pago"`
}

// Normalize recorta espacios.
func (f *PagoForm) Normalize() {
	f.FechaPago = strings.TrimSpace(f.FechaPago)
}

// SaldoCuota es el resumen de GET /pagos/cuota/{id}?ID_Persona={id}.
type SaldoCuota struct {
	CuotaID         int             `json:"ID_Cuota"`
	PagosRealizados decimal.Decimal `json:"PagosRealizados"`
	MontoRestante   decimal.Decimal `json:"MontoRestante"`
	Estado          string          `json:"Estado"`
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ingreso se genera en el servicio por cada pago registrado, o se carga manualmente.
type Ingreso struct {
	ID            int             `json:"ID_Ingreso"`
	Fecha         string          `json:"Fecha"`
	Monto         decimal.Decimal `json:"Monto"`
	Fuente        string          `json:"Fuente,omitempty"`
	Observaciones string          `json:"Observaciones,omitempty"`
	PagoID        *int            `json:"ID_Pago,omitempty"`
}

// Egreso es un gasto de la asociación.
type Egreso struct {
	ID          int             `json:"ID_Egreso"`
	Fecha       string          `json:"Fecha"`
	Monto       decimal.Decimal `json:"Monto"`
	Descripcion string          `json:"Descripcion"`
}

// EgresoForm es el cuerpo de POST /egresos.
type EgresoForm struct {
	Fecha       string          `json:"Fecha" validate:"required,fecha"`
	Monto       decimal.Decimal `json:"Monto" validate:"gt=0"`
	Descripcion string          `json:"Descripcion" validate:"required"`
}

// Normalize recorta espacios.
func (f *EgresoForm) Normalize() {
	f.Fecha = strings.TrimSpace(f.Fecha)
	f.Descripcion = strings.TrimSpace(f.Descripcion)
}

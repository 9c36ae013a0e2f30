package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cuota es un cobro con monto y fecha límite.
type Cuota struct {
	ID          int             `json:"ID_Cuota"`
	Descripcion string          `json:"Descripcion"`
	Monto       decimal.Decimal `json:"Monto"`
	FechaLimite string          `json:"Fecha_Limite"`
}

// CuotaForm es el cuerpo de POST /cuotas.
type CuotaForm struct {
	Descripcion string          `json:"Descripcion" validate:"required"`
	Monto       decimal.Decimal `json:"Monto" validate:"gt=0"`
	FechaLimite string          `json:"Fecha_Limite" validate:"required,fecha"`
}

// Normalize recorta espacios.
func (f *CuotaForm) Normalize() {
	f.Descripcion = strings.TrimSpace(f.Descripcion)
	f.FechaLimite = strings.TrimSpace(f.FechaLimite)
}

// BuscarCuota localiza una cuota por id dentro de una colección ya cargada.
func BuscarCuota(cuotas []Cuota, id int) (Cuota, bool) {
	for _, c := range cuotas {
		if c.ID == id {
			return c, true
		}
	}
	return Cuota{}, false
}

package models

import "strings"

// Derecho es un derecho (de voto, de agua, ...) vinculable a cuotas.
type Derecho struct {
	ID     int    `json:"ID_Derecho"`
	Nombre string `json:"Nombre"`
	Estado string `json:"Estado,omitempty"`
}

// DerechoForm es el cuerpo de POST/PUT /derechos.
type DerechoForm struct {
	Nombre string `json:"Nombre" validate:"required"`
}

// Normalize recorta espacios.
func (f *DerechoForm) Normalize() {
	f.Nombre = strings.TrimSpace(f.Nombre)
}

// VinculoCuota es el cuerpo de POST /derechos/{id}/vincular-cuota.
type VinculoCuota struct {
	DerechoID FlexInt `json:"ID_Derecho,omitempty" validate:"gt=0"`
	CuotaID   FlexInt `json:"ID_Cuota" validate:"gt=0"`
}

// PersonaDerecho asigna un derecho a una persona; el servicio preasigna sus cuotas.
type PersonaDerecho struct {
	PersonaID   FlexInt `json:"ID_Persona" validate:"gt=0"`
	DerechoID   FlexInt `json:"ID_Derecho" validate:"gt=0"`
	FechaInicio string  `json:"Fecha_Inicio" validate:"required,fecha"`
	FechaFin    *string `json:"Fecha_Fin" validate:"omitempty,fecha"`
}

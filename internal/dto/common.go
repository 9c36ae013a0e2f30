package dto

import (
	"github.com/cocode/gestion_mid/models/requestresponse"

	"github.com/shopspring/decimal"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
type APIResponseDTO = requestresponse.APIResponseDTO

// ListadoDTO es la proyección filtrada y ordenada de una colección.
type ListadoDTO[T any] struct {
	Items     []T      `json:"items"`
	Total     int      `json:"total"`
	Filtro    string   `json:"filtro"`
	Orden     string   `json:"orden"`
	Direccion string   `json:"direccion"`
	Claves    []string `json:"claves"`
}

// MutacionDTO reporta el resultado de una mutación junto con la colección recargada.
type MutacionDTO[T any] struct {
	Mensaje string `json:"mensaje"`
	Items   []T    `json:"items"`
}

// RolesDTO lista los roles que pueden seleccionarse en el formulario de personas.
type RolesDTO struct {
	Roles []string `json:"roles"`
}

// SaldoDTO es el saldo mostrado para un par persona-cuota.
type SaldoDTO struct {
	PersonaID     int             `json:"ID_Persona"`
	CuotaID       int             `json:"ID_Cuota"`
	MontoRestante decimal.Decimal `json:"MontoRestante"`
	Estado        string          `json:"Estado"`
}

// PagoRegistradoDTO acompaña el mensaje del pago con el saldo consultado de nuevo.
type PagoRegistradoDTO struct {
	Mensaje string   `json:"mensaje"`
	Saldo   SaldoDTO `json:"saldo"`
}

// TotalDTO envuelve un total monetario.
type TotalDTO struct {
	Total decimal.Decimal `json:"total"`
}

package models

// Mensaje es la respuesta de las mutaciones del servicio de gestión.
type Mensaje struct {
	Mensaje string   `json:"mensaje"`
	Errores []string `json:"errores,omitempty"`
}

package models

import "github.com/shopspring/decimal"

func init() {
	// El servicio de gestión valida los montos como números; "500.00" entre comillas se rechaza.
	decimal.MarshalJSONWithoutQuotes = true
}

// Estados de una persona.
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// Roles de la junta directiva. SinRol es el único que pueden compartir varias personas activas.
const (
	RolPresidente     = "Presidente"
	RolVicepresidente = "Vicepresidente"
	RolSecretario     = "Secretario"
	RolTesorero       = "Tesorero"
	RolVocalI         = "Vocal I"
	RolVocalII        = "Vocal II"
	RolVocalIII       = "Vocal III"
	SinRol            = "Sin rol"
)

// Roles en el orden en que se ofrecen al usuario.
var Roles = []string{
	RolPresidente,
	RolVicepresidente,
	RolSecretario,
	RolTesorero,
	RolVocalI,
	RolVocalII,
	RolVocalIII,
	SinRol,
}

// EsRolValido indica si r pertenece al conjunto cerrado de roles.
func EsRolValido(r string) bool {
	for _, rol := range Roles {
		if rol == r {
			return true
		}
	}
	return false
}

// Estados de una cuota asignada a una persona. El servicio define el valor;
// Pendiente es además el estado asumido cuando aún no hay resumen de pagos.
const (
	EstadoCuotaPendiente  = "Pendiente"
	EstadoCuotaParcial    = "Parcial"
	EstadoCuotaPagado     = "Pagado"
	EstadoCuotaCompletado = "Completado"
)

// FormatoFecha es el formato de fechas que acepta el servicio de gestión.
const FormatoFecha = "2006-01-02"

package models

import "strings"

// Persona es un miembro de la comunidad tal como la devuelve GET /personas.
type Persona struct {
	ID        int    `json:"ID_Persona"`
	DPI       string `json:"DPI"`
	Nombre    string `json:"Nombre"`
	Email     string `json:"Email,omitempty"`
	Telefono  string `json:"Telefono,omitempty"`
	Direccion string `json:"Direccion,omitempty"`
	Estado    string `json:"Estado"`
	Rol       string `json:"Rol"`
}

// Activa indica si la persona está en estado Activo.
func (p Persona) Activa() bool {
	return p.Estado == EstadoActivo
}

// PersonaForm es el borrador editable de una persona.
type PersonaForm struct {
	DPI       string `json:"DPI" validate:"required,len=13,number"`
	Nombre    string `json:"Nombre" validate:"required"`
	Email     string `json:"Email" validate:"omitempty,email"`
	Telefono  string `json:"Telefono" validate:"omitempty,number,min=7,max=15"`
	Direccion string `json:"Direccion"`
	Estado    string `json:"Estado" validate:"required,oneof=Activo Inactivo"`
	Rol       string `json:"Rol" validate:"required,rol"`
}

// NuevaPersonaForm devuelve el borrador con sus valores por defecto.
func NuevaPersonaForm() PersonaForm {
	return PersonaForm{Estado: EstadoActivo, Rol: SinRol}
}

// FormDePersona copia un registro al borrador de edición.
func FormDePersona(p Persona) PersonaForm {
	rol := p.Rol
	if rol == "" {
		rol = SinRol
	}
	return PersonaForm{
		DPI:       p.DPI,
		Nombre:    p.Nombre,
		Email:     p.Email,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		Estado:    p.Estado,
		Rol:       rol,
	}
}

// Normalize recorta espacios y completa los valores por defecto.
func (f *PersonaForm) Normalize() {
	f.DPI = strings.TrimSpace(f.DPI)
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Email = strings.TrimSpace(f.Email)
	f.Telefono = strings.TrimSpace(f.Telefono)
	f.Direccion = strings.TrimSpace(f.Direccion)
	f.Estado = strings.TrimSpace(f.Estado)
	f.Rol = strings.TrimSpace(f.Rol)
	if f.Estado == "" {
		f.Estado = EstadoActivo
	}
	if f.Rol == "" {
		f.Rol = SinRol
	}
}

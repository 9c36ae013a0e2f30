package services

import "github.com/cocode/gestion_mid/models"

// RolesDisponibles calcula los roles que pueden elegirse en el formulario de personas.
//
// Un rol distinto de "Sin rol" queda ocupado cuando lo tiene otra persona activa; la
// persona en edición no ocupa su propio rol. Al editar, si rolBorrador no quedó en la
// lista (ocupado por datos desactualizados o fuera del catálogo) se reinserta al inicio
// para que siga seleccionable. rolBorrador debe ser el rol guardado de esa persona.
func RolesDisponibles(personas []models.Persona, editando bool, idEditando int, rolBorrador string) []string {
	ocupados := make(map[string]bool)
	for _, p := range personas {
		if !p.Activa() {
			continue
		}
		if editando && p.ID == idEditando {
			continue
		}
		if p.Rol == "" || p.Rol == models.SinRol {
			continue
		}
		ocupados[p.Rol] = true
	}

	out := make([]string, 0, len(models.Roles)+1)
	for _, rol := range models.Roles {
		if rol == models.SinRol || !ocupados[rol] {
			out = append(out, rol)
		}
	}

	if editando && rolBorrador != "" && !contiene(out, rolBorrador) {
		out = append([]string{rolBorrador}, out...)
	}
	return out
}

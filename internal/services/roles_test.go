package services

import (
	"testing"

	"github.com/cocode/gestion_mid/models"

	"github.com/stretchr/testify/require"
)

func personasJunta() []models.Persona {
	return []models.Persona{
		{ID: 1, Nombre: "Ana", Estado: models.EstadoActivo, Rol: models.RolPresidente},
		{ID: 2, Nombre: "Luis", Estado: models.EstadoActivo, Rol: models.RolTesorero},
		{ID: 3, Nombre: "Marta", Estado: models.EstadoInactivo, Rol: models.RolSecretario},
		{ID: 4, Nombre: "Pedro", Estado: models.EstadoActivo, Rol: models.SinRol},
		{ID: 5, Nombre: "Rosa", Estado: models.EstadoActivo, Rol: models.SinRol},
	}
}

func TestRolesDisponibles_Creando(t *testing.T) {
	roles := RolesDisponibles(personasJunta(), false, 0, models.SinRol)
	require.Equal(t, []string{
		models.RolVicepresidente,
		models.RolSecretario,
		models.RolVocalI,
		models.RolVocalII,
		models.RolVocalIII,
		models.SinRol,
	}, roles)
}

func TestRolesDisponibles_EditandoConservaSuRol(t *testing.T) {
	roles := RolesDisponibles(personasJunta(), true, 2, models.RolTesorero)
	require.Contains(t, roles, models.RolTesorero)
	require.NotContains(t, roles, models.RolPresidente)
	require.Equal(t, models.RolVicepresidente, roles[0])
}

func TestRolesDisponibles_ReinsertaRolOcupado(t *testing.T) {
	personas := personasJunta()
	// Otra persona activa tomó la presidencia mientras se editaba a Pedro.
	roles := RolesDisponibles(personas, true, 4, models.RolPresidente)
	require.Equal(t, models.RolPresidente, roles[0])
	require.Contains(t, roles, models.SinRol)
}

func TestRolesDisponibles_NuncaDevuelveRolAjeno(t *testing.T) {
	personas := personasJunta()
	for _, editando := range []int{0, 1, 2, 3, 4, 5} {
		roles := RolesDisponibles(personas, editando > 0, editando, "")
		require.Contains(t, roles, models.SinRol)
		for _, p := range personas {
			if !p.Activa() || p.ID == editando || p.Rol == models.SinRol {
				continue
			}
			require.NotContains(t, roles, p.Rol, "editando=%d", editando)
		}
	}
}

func TestRolesDisponibles_InactivaLiberaRol(t *testing.T) {
	personas := personasJunta()
	require.NotContains(t, RolesDisponibles(personas, false, 0, ""), models.RolTesorero)

	personas[1].Estado = models.EstadoInactivo
	require.Contains(t, RolesDisponibles(personas, false, 0, ""), models.RolTesorero)
}

func TestRolesDisponibles_ReinsertaRolFueraDelCatalogo(t *testing.T) {
	roles := RolesDisponibles(nil, true, 1, "Tesorera")
	require.Equal(t, "Tesorera", roles[0])
	require.Len(t, roles, len(models.Roles)+1)

	require.NotContains(t, RolesDisponibles(nil, false, 0, "Tesorera"), "Tesorera")
}

package services

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"golang.org/x/text/cases"
)

// Direccion del ordenamiento.
type Direccion string

const (
	Asc  Direccion = "asc"
	Desc Direccion = "desc"
)

// Orden es la clave activa y su dirección.
type Orden struct {
	Clave     string
	Direccion Direccion
}

// Campo declara un texto sobre el que se aplica el filtro.
// Plegar indica comparación sin distinguir mayúsculas; el DPI se compara tal cual.
type Campo[T any] struct {
	Valor  func(T) string
	Plegar bool
}

// Listado mantiene filtro y orden de una colección y produce su proyección.
// La colección fuente nunca se modifica.
type Listado[T any] struct {
	Filtro string
	Orden  Orden

	campos []Campo[T]
	claves map[string]func(T) string
}

// NuevoListado arma un listado con sus campos de filtro, sus claves de orden y el orden inicial.
func NuevoListado[T any](inicial Orden, campos []Campo[T], claves map[string]func(T) string) *Listado[T] {
	if inicial.Direccion == "" {
		inicial.Direccion = Asc
	}
	return &Listado[T]{Orden: inicial, campos: campos, claves: claves}
}

// NuevoListadoPersonas ordena por Nombre o Rol y filtra por Nombre y DPI.
func NuevoListadoPersonas() *Listado[models.Persona] {
	return NuevoListado(
		Orden{Clave: "Nombre", Direccion: Asc},
		[]Campo[models.Persona]{
			{Valor: func(p models.Persona) string { return p.Nombre }, Plegar: true},
			{Valor: func(p models.Persona) string { return p.DPI }},
		},
		map[string]func(models.Persona) string{
			"Nombre": func(p models.Persona) string { return p.Nombre },
			"Rol":    func(p models.Persona) string { return p.Rol },
		},
	)
}

// NuevoListadoDerechos ordena y filtra por Nombre.
func NuevoListadoDerechos() *Listado[models.Derecho] {
	return NuevoListado(
		Orden{Clave: "Nombre", Direccion: Asc},
		[]Campo[models.Derecho]{
			{Valor: func(d models.Derecho) string { return d.Nombre }, Plegar: true},
		},
		map[string]func(models.Derecho) string{
			"Nombre": func(d models.Derecho) string { return d.Nombre },
		},
	)
}

// Claves devuelve las claves de orden admitidas, en orden alfabético.
func (l *Listado[T]) Claves() []string {
	out := make([]string, 0, len(l.claves))
	for k := range l.claves {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// AlternarOrden invierte la dirección si la clave ya está activa; si no, la activa ascendente.
func (l *Listado[T]) AlternarOrden(clave string) error {
	if _, ok := l.claves[clave]; !ok {
		return errClaveOrden(clave)
	}
	if l.Orden.Clave == clave {
		if l.Orden.Direccion == Asc {
			l.Orden.Direccion = Desc
		} else {
			l.Orden.Direccion = Asc
		}
		return nil
	}
	l.Orden = Orden{Clave: clave, Direccion: Asc}
	return nil
}

// FijarOrden establece clave y dirección de una vez; una dirección vacía es ascendente.
func (l *Listado[T]) FijarOrden(clave string, dir Direccion) error {
	if _, ok := l.claves[clave]; !ok {
		return errClaveOrden(clave)
	}
	switch dir {
	case "":
		dir = Asc
	case Asc, Desc:
	default:
		return helpers.NewValidationError([]string{fmt.Sprintf("Dirección de orden inválida: %s.", dir)})
	}
	l.Orden = Orden{Clave: clave, Direccion: dir}
	return nil
}

// Proyectar filtra y ordena una copia de items.
func (l *Listado[T]) Proyectar(items []T) []T {
	fold := cases.Fold()
	filtro := fold.String(l.Filtro)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if l.coincide(it, filtro, fold) {
			out = append(out, it)
		}
	}

	valor, ok := l.claves[l.Orden.Clave]
	if !ok {
		return out
	}
	claves := make([]string, len(out))
	idx := make([]int, len(out))
	for i, it := range out {
		idx[i] = i
		claves[i] = fold.String(valor(it))
	}
	desc := l.Orden.Direccion == Desc
	slices.SortStableFunc(idx, func(a, b int) int {
		c := strings.Compare(claves[a], claves[b])
		if desc {
			return -c
		}
		return c
	})

	ordenados := make([]T, len(out))
	for i, j := range idx {
		ordenados[i] = out[j]
	}
	return ordenados
}

func (l *Listado[T]) coincide(it T, filtroPlegado string, fold cases.Caser) bool {
	if l.Filtro == "" || len(l.campos) == 0 {
		return true
	}
	for _, c := range l.campos {
		v := c.Valor(it)
		if c.Plegar {
			if strings.Contains(fold.String(v), filtroPlegado) {
				return true
			}
			continue
		}
		if strings.Contains(v, l.Filtro) {
			return true
		}
	}
	return false
}

func errClaveOrden(clave string) error {
	return helpers.NewAppError(http.StatusBadRequest, fmt.Sprintf("clave de orden desconocida: %s", clave), nil)
}

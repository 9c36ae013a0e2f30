package services

import (
	"context"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"

	"github.com/beego/beego/v2/core/logs"
)

// PaginaCuotas mantiene la colección de cuotas y el resultado del último alta.
type PaginaCuotas struct {
	dir Directorio

	Cuotas  []models.Cuota
	Mensaje string
	Errores []string
}

func NuevaPaginaCuotas(dir Directorio) *PaginaCuotas {
	return &PaginaCuotas{dir: dir, Cuotas: []models.Cuota{}}
}

func (p *PaginaCuotas) Cargar(ctx context.Context) error {
	cuotas, err := p.dir.ListCuotas(ctx)
	if err != nil {
		p.Errores = []string{MsgErrorCargarCuotas}
		return helpers.AsAppError(err, MsgErrorCargarCuotas)
	}
	p.Cuotas = cuotas
	return nil
}

// Crear registra la cuota. El mensaje de éxito es el del servicio cuando lo envía.
func (p *PaginaCuotas) Crear(ctx context.Context, form models.CuotaForm) error {
	p.Errores = nil
	p.Mensaje = ""
	form.Normalize()
	if err := Validar(form); err != nil {
		p.Errores = helpers.MensajesDeError(err, MsgErrorCrearCuota)
		return err
	}

	resp, err := p.dir.CreateCuota(ctx, form)
	if err != nil {
		p.Errores = helpers.MensajesDeError(err, MsgErrorCrearCuota)
		return helpers.AsAppError(err, MsgErrorCrearCuota)
	}

	logs.Info("cuota creada", "descripcion", form.Descripcion, "monto", form.Monto.String())
	p.Mensaje = resp.Mensaje
	if p.Mensaje == "" {
		p.Mensaje = MsgCuotaCreada
	}
	if err := p.Cargar(ctx); err != nil {
		logs.Warn("recarga de cuotas fallida", "err", err)
	}
	return nil
}

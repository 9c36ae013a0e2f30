package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamInt extrae un parámetro de ruta como entero positivo.
func ParamInt(ctx *context.Context, name string) (int, error) {
	if ctx == nil {
		return 0, fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return 0, fmt.Errorf("parametro %s vacío", strings.TrimPrefix(name, ":"))
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("parametro %s inválido", strings.TrimPrefix(name, ":"))
	}
	return val, nil
}

// QueryInt lee un parámetro de query opcional; vacío devuelve 0.
func QueryInt(ctx *context.Context, name string) (int, error) {
	raw := strings.TrimSpace(ctx.Input.Query(name))
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, fmt.Errorf("parametro %s inválido", name)
	}
	return val, nil
}

// QueryBool interpreta true/1/si como verdadero.
func QueryBool(ctx *context.Context, name string) bool {
	raw := strings.ToLower(strings.TrimSpace(ctx.Input.Query(name)))
	return raw == "true" || raw == "1" || raw == "si" || raw == "sí"
}

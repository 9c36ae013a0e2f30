package middlewares

import (
	"strings"
	"sync"

	internalhelpers "github.com/cocode/gestion_mid/internal/helpers"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
	"github.com/google/uuid"
)

var (
	requestIDOnce sync.Once
)

// UseRequestID registra una sola vez el filtro que asigna X-Request-Id.
func UseRequestID() {
	requestIDOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, requestIDFilter)
	})
}

// Si el llamador no envía X-Request-Id se genera uno; en ambos casos se devuelve
// en la respuesta y queda en el request para propagarlo al servicio de gestión.
func requestIDFilter(ctx *context.Context) {
	if ctx == nil || ctx.Request == nil {
		return
	}
	id := strings.TrimSpace(ctx.Input.Header(internalhelpers.HeaderRequestID))
	if id == "" {
		id = uuid.NewString()
		ctx.Request.Header.Set(internalhelpers.HeaderRequestID, id)
	}
	ctx.Output.Header(internalhelpers.HeaderRequestID, id)
	ctx.Input.SetData("request_id", id)
	logs.Debug("request", ctx.Request.Method, ctx.Request.URL.Path, "request_id", id)
}

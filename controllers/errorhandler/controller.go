package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/cocode/gestion_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController se registra en el router para gestionar 404 y 405.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 centraliza la respuesta cuando la ruta no existe.
func (c *ErrorHandlerController) Error404() {
	c.noMatch(http.StatusNotFound)
}

// Error405 responde cuando la ruta existe pero no para ese método.
func (c *ErrorHandlerController) Error405() {
	c.noMatch(http.StatusMethodNotAllowed)
}

func (c *ErrorHandlerController) noMatch(status int) {
	method := c.Ctx.Request.Method
	path := c.Ctx.Request.URL.Path
	logs.Warn("ruta sin controlador", method, path, "status", status)

	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, fmt.Sprintf("nomatch|%s|%s", method, path), nil)
	_ = c.ServeJSON()
}

// RecoverPanic se instala como BConfig.RecoverFunc: registra el pánico y responde
// con el sobre estándar en lugar de la página de error de beego.
func RecoverPanic(ctx *context.Context, cfg *beego.Config) {
	r := recover()
	if r == nil {
		return
	}
	if r == beego.ErrAbort {
		return
	}
	logs.Error("panic:", r, "request_id", ctx.Input.Header("X-Request-Id"))
	logs.Error(string(debug.Stack()))

	appName := "cocode_mid"
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}
	message := fmt.Sprintf("Error service %s: An internal server error occurred.", appName)
	message += fmt.Sprintf(" Request Info: URL: %s, Method: %s", ctx.Request.URL, ctx.Request.Method)
	message += " Time: " + time.Now().UTC().Format(time.RFC3339)

	status := http.StatusInternalServerError
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(requestresponse.NewError(status, message, nil), false, false)
}

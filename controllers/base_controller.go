package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models/requestresponse"

	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// RespondSuccess envuelve un payload en el formato estándar.
func (c *BaseController) RespondSuccess(status int, message string, data interface{}) {
	c.WriteJSON(requestresponse.NewSuccess(status, message, data))
}

// RespondError transforma cualquier error en la respuesta estándar; los errores
// mostrables viajan en Data.errores.
func (c *BaseController) RespondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	status := appErr.Status
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	c.WriteJSON(requestresponse.NewErrores(status, appErr.Message, appErr.Errores))
}

// WriteJSON escribe la respuesta con el status que trae.
func (c *BaseController) WriteJSON(resp requestresponse.APIResponseDTO) {
	c.Ctx.Output.SetStatus(resp.Status)
	c.Data["json"] = resp
	_ = c.ServeJSON()
}

// ParseJSONBody deserializa el cuerpo de la petición en dest.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return helpers.NewAppError(http.StatusBadRequest, "cuerpo vacío", nil)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return helpers.NewAppError(http.StatusBadRequest, "cuerpo inválido", err)
	}
	return nil
}

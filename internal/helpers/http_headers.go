package helpers

import (
	stdctx "context"
	"strings"

	roothelpers "github.com/cocode/gestion_mid/helpers"

	"github.com/beego/beego/v2/server/web/context"
)

// HeaderRequestID identifica la petición de punta a punta.
const HeaderRequestID = "X-Request-Id"

func copyRequestHeaders(ctx *context.Context) map[string]string {
	headers := make(map[string]string)
	if ctx == nil || ctx.Input == nil {
		return headers
	}
	if auth := strings.TrimSpace(ctx.Input.Header("Authorization")); auth != "" {
		headers["Authorization"] = auth
	}
	if corr := strings.TrimSpace(ctx.Input.Header(HeaderRequestID)); corr != "" {
		headers[HeaderRequestID] = corr
	}
	if corr := strings.TrimSpace(ctx.Input.Header("X-Correlation-Id")); corr != "" {
		headers["X-Correlation-Id"] = corr
	}
	return headers
}

// RequestContext devuelve el contexto estándar del request con los headers a propagar.
func RequestContext(ctx *context.Context) stdctx.Context {
	base := stdctx.Background()
	if ctx != nil && ctx.Request != nil {
		base = ctx.Request.Context()
	}
	return roothelpers.ConHeaders(base, copyRequestHeaders(ctx))
}

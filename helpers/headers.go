package helpers

import "context"

type headersKey struct{}

// ConHeaders adjunta al contexto los headers que deben propagarse al servicio remoto.
func ConHeaders(ctx context.Context, headers map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(headers) == 0 {
		return ctx
	}
	return context.WithValue(ctx, headersKey{}, headers)
}

// HeadersDe devuelve una copia de los headers adjuntos con ConHeaders.
func HeadersDe(ctx context.Context) map[string]string {
	out := make(map[string]string)
	if ctx == nil {
		return out
	}
	if h, ok := ctx.Value(headersKey{}).(map[string]string); ok {
		for k, v := range h {
			out[k] = v
		}
	}
	return out
}

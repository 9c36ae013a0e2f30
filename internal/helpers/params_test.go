package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	roothelpers "github.com/cocode/gestion_mid/helpers"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *context.Context {
	ctx := context.NewContext()
	ctx.Reset(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	return ctx
}

func TestParamInt(t *testing.T) {
	ctx := newContext("/v1/personas/7")
	ctx.Input.SetParam(":id", "7")
	id, err := ParamInt(ctx, ":id")
	require.NoError(t, err)
	require.Equal(t, 7, id)

	ctx.Input.SetParam(":id", "-3")
	_, err = ParamInt(ctx, ":id")
	require.EqualError(t, err, "parametro id inválido")
}

func TestQueryIntYBool(t *testing.T) {
	ctx := newContext("/v1/pagos/saldo?persona=7&cuota=&confirmar=SI")
	v, err := QueryInt(ctx, "persona")
	require.NoError(t, err)
	require.Equal(t, 7, v)

	v, err = QueryInt(ctx, "cuota")
	require.NoError(t, err)
	require.Zero(t, v)

	require.True(t, QueryBool(ctx, "confirmar"))
	require.False(t, QueryBool(ctx, "otro"))
}

func TestRequestContext_PropagaHeaders(t *testing.T) {
	ctx := newContext("/v1/personas")
	ctx.Request.Header.Set("X-Request-Id", "abc")
	ctx.Request.Header.Set("Authorization", "Bearer t")
	ctx.Request.Header.Set("Cookie", "no-se-propaga")

	headers := roothelpers.HeadersDe(RequestContext(ctx))
	require.Equal(t, map[string]string{"X-Request-Id": "abc", "Authorization": "Bearer t"}, headers)
}

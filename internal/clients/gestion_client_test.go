package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cocode/gestion_mid/helpers"
	"github.com/cocode/gestion_mid/models"
	rootservices "github.com/cocode/gestion_mid/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *GestionClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGestionClient(rootservices.Config{GestionAPIBaseURL: srv.URL + "/api", RequestTimeout: time.Second})
}

func TestGestionClient_ListPersonas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/personas", r.URL.Path)
		require.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`[{"ID_Persona":1,"DPI":"1000000000001","Nombre":"Ana","Estado":"Activo","Rol":"Presidente"}]`))
	})

	ctx := helpers.ConHeaders(context.Background(), map[string]string{"X-Request-Id": "req-1"})
	personas, err := c.ListPersonas(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Persona{{ID: 1, DPI: "1000000000001", Nombre: "Ana", Estado: "Activo", Rol: "Presidente"}}, personas)
}

func TestGestionClient_ListaVaciaNoEsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	derechos, err := c.ListDerechos(context.Background())
	require.NoError(t, err)
	require.NotNil(t, derechos)
	require.Empty(t, derechos)
}

func TestGestionClient_CreatePersonaErrores(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Sin rol", body["Rol"])
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errores":["DPI debe ser un número de 13 dígitos."]}`))
	})

	_, err := c.CreatePersona(context.Background(), models.PersonaForm{DPI: "1", Nombre: "Ana", Estado: "Activo", Rol: "Sin rol"})
	require.True(t, helpers.IsHTTPError(err, http.StatusBadRequest))
	require.Equal(t, []string{"DPI debe ser un número de 13 dígitos."}, helpers.MensajesDeError(err, "Error al guardar."))
}

func TestGestionClient_RutasDeMutacion(t *testing.T) {
	var vistos []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		vistos = append(vistos, r.Method+" "+r.URL.Path+" "+string(raw))
		_, _ = w.Write([]byte(`{"mensaje":"ok"}`))
	})
	ctx := context.Background()

	msg, err := c.UpdatePersona(ctx, 3, models.PersonaForm{})
	require.NoError(t, err)
	require.Equal(t, "ok", msg.Mensaje)
	_, err = c.DeletePersona(ctx, 3)
	require.NoError(t, err)
	_, err = c.VincularCuota(ctx, 2, 5)
	require.NoError(t, err)
	_, err = c.RegistrarPago(ctx, models.PagoForm{PersonaID: 7, CuotaID: 1, MontoPagado: decimal.RequireFromString("200.50"), FechaPago: "2025-05-01"})
	require.NoError(t, err)

	require.Len(t, vistos, 4)
	require.Contains(t, vistos[0], "PUT /api/personas/3 ")
	require.Equal(t, "DELETE /api/personas/3 ", vistos[1])
	require.Equal(t, `POST /api/derechos/2/vincular-cuota {"ID_Cuota":5}`, vistos[2])
	require.Contains(t, vistos[3], `"Monto_Pagado":200.5`)
}

func TestGestionClient_SaldoCuota(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pagos/cuota/1", r.URL.Path)
		if r.URL.Query().Get("ID_Persona") == "8" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Asignación no encontrada"}`))
			return
		}
		require.Equal(t, "7", r.URL.Query().Get("ID_Persona"))
		_, _ = w.Write([]byte(`{"ID_Cuota":1,"PagosRealizados":200.0,"MontoRestante":300.0,"Estado":"Parcial"}`))
	})
	ctx := context.Background()

	saldo, err := c.SaldoCuota(ctx, 1, 7)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(300).Equal(saldo.MontoRestante))
	require.Equal(t, "Parcial", saldo.Estado)

	_, err = c.SaldoCuota(ctx, 1, 8)
	require.True(t, helpers.IsHTTPError(err, http.StatusNotFound))
}

func TestGestionClient_Totales(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ingresos/total":
			_, _ = w.Write([]byte(`{"total_ingresos":1200.5}`))
		case "/api/egresos/total":
			_, _ = w.Write([]byte(`{"total_egresos":200}`))
		case "/api/fondos/disponibles":
			_, _ = w.Write([]byte(`{"fondos_disponibles":1000.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	ing, err := c.TotalIngresos(ctx)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("1200.5").Equal(ing))
	eg, err := c.TotalEgresos(ctx)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(200).Equal(eg))
	fondos, err := c.FondosDisponibles(ctx)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("1000.5").Equal(fondos))
}

func TestGestionClient_ContextoCancelado(t *testing.T) {
	llamado := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		llamado = true
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListCuotas(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, llamado)
}

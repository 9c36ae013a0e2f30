// helpers/http_client.go
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"
)

// ---------- Cliente JSON + RETRIES ----------

// HTTPError envuelve códigos de estado no exitosos del servicio remoto.
// Errores y Mensaje se extraen del cuerpo {"errores": [...]} / {"mensaje": ...} / {"error": ...}.
type HTTPError struct {
	Status  int
	Body    string
	Mensaje string
	Errores []string
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

func newHTTPError(status int, body []byte) *HTTPError {
	he := &HTTPError{Status: status, Body: strings.TrimSpace(string(body))}
	var parsed struct {
		Errores []string `json:"errores"`
		Mensaje string   `json:"mensaje"`
		Error   string   `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, e := range parsed.Errores {
			if trimmed := strings.TrimSpace(e); trimmed != "" {
				he.Errores = append(he.Errores, trimmed)
			}
		}
		he.Mensaje = strings.TrimSpace(parsed.Mensaje)
		if he.Mensaje == "" {
			he.Mensaje = strings.TrimSpace(parsed.Error)
		}
	}
	return he
}

// Config global de reintentos
var (
	defaultRetryCount  = 0
	defaultBackoffBase = 300 * time.Millisecond
	maxBackoff         = 3 * time.Second
)

func SetDefaultRetryCount(n int) {
	if n < 0 {
		n = 0
	}
	defaultRetryCount = n
}

func SetRetryBackoff(baseMs int) {
	if baseMs <= 0 {
		baseMs = 300
	}
	defaultBackoffBase = time.Duration(baseMs) * time.Millisecond
}

// DoJSON ejecuta la petición sin headers adicionales.
func DoJSON(ctx context.Context, method, url string, in any, out any, timeout time.Duration) error {
	return DoJSONWithHeaders(ctx, method, url, nil, in, out, timeout)
}

// DoJSONWithHeaders serializa in, ejecuta la petición y decodifica la respuesta en out.
// Sólo los GET se reintentan: registrar un pago o crear una persona dos veces no es aceptable.
func DoJSONWithHeaders(ctx context.Context, method, url string, headers map[string]string, in any, out any, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Serializa body una vez
	var body []byte
	var err error
	if in != nil {
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	doOnce := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			if v != "" {
				req.Header.Set(k, v)
			}
		}

		client := &http.Client{Timeout: timeout}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			b, _ := io.ReadAll(resp.Body)
			return newHTTPError(resp.StatusCode, b)
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if len(bytes.TrimSpace(bodyBytes)) == 0 {
			return nil
		}
		return json.Unmarshal(bodyBytes, out)
	}

	retries := 0
	if method == http.MethodGet {
		retries = defaultRetryCount
	}

	var attempt int
	for {
		err = doOnce()
		if err == nil {
			return nil
		}
		if attempt >= retries || !isRetryableErr(err) || ctx.Err() != nil {
			logs.Warn("llamado remoto fallido", method, url, "request_id", headers["X-Request-Id"], "err", err)
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoffFor(attempt)):
		}
		attempt++
	}
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var he *HTTPError
	if errors.As(err, &he) {
		switch he.Status {
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "timeout") ||
		strings.Contains(l, "connection reset") ||
		strings.Contains(l, "connection refused") ||
		strings.Contains(l, "server closed idle connection")
}

func backoffFor(attempt int) time.Duration {
	d := defaultBackoffBase << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

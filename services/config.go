package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cocode/gestion_mid/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración del MID y del servicio de gestión remoto.
type Config struct {
	AppName           string
	HTTPPort          int
	RunMode           string
	GestionAPIBaseURL string
	RequestTimeout    time.Duration
	RetryCount        int
	RetryBackoffMs    int
	CORSOrigins       []string
	LogLevel          string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = loadConfig()

		if cfg.GestionAPIBaseURL == "" {
			panic("GESTION_API_BASE_URL no configurado")
		}

		helpers.SetDefaultRetryCount(cfg.RetryCount)
		helpers.SetRetryBackoff(cfg.RetryBackoffMs)
	})
	return cfg
}

func loadConfig() Config {
	return Config{
		AppName:           getString("APP_NAME", "appname", "cocode_mid"),
		HTTPPort:          getInt("HTTP_PORT", "httpport", 8080),
		RunMode:           getString("RUN_MODE", "runmode", "dev"),
		GestionAPIBaseURL: normalizeBase(getString("GESTION_API_BASE_URL", "gestion_api_base_url", "")),
		RequestTimeout:    time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
		RetryCount:        getInt("RETRY_COUNT", "retry_count", 1),
		RetryBackoffMs:    getInt("RETRY_BACKOFF_MS", "retry_backoff_ms", 300),
		CORSOrigins:       splitList(getString("CORS_ORIGINS", "cors_origins", "http://localhost:3000")),
		LogLevel:          strings.ToLower(getString("LOG_LEVEL", "log_level", "info")),
	}
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}

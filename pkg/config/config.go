package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la suite cliente (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Poll    PollConfig
	Mock    MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST consumido.
type APIConfig struct {
	// BaseURL del backend, sin slash final. Los paths del contrato llevan slash
	// final (estilo Django), ej. /products/.
	BaseURL string
	Timeout time.Duration
}

// StorageConfig almacenamiento local durable del cliente.
type StorageConfig struct {
	// Dir donde viven las claves de sesión y settings.json. Vacío = directorio
	// de configuración del usuario (~/.config/inventario-console).
	Dir string
}

// Dir resuelto; crea la ruta por defecto bajo el config dir del usuario.
func (c StorageConfig) Resolve(appName string) string {
	if c.Dir != "" {
		return c.Dir
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// PollConfig intervalos de sondeo de las vistas.
type PollConfig struct {
	LowStockInterval     time.Duration // revisión de stock bajo sobre estado local
	NotificationInterval time.Duration // re-fetch de /notifications/ (variante inventory)
	LowStockDefault      int           // umbral global si el producto no define el suyo
}

// MockConfig configuración del backend simulado local (cmd/mockapi).
type MockConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTMinutes int
	JWTIssuer  string
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-console"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Storage: StorageConfig{
			Dir: getString(v, "STORAGE_DIR", ""),
		},
		Poll: PollConfig{
			LowStockInterval:     time.Duration(getInt(v, "LOW_STOCK_INTERVAL_SECONDS", 60)) * time.Second,
			NotificationInterval: time.Duration(getInt(v, "NOTIFICATION_INTERVAL_SECONDS", 30)) * time.Second,
			LowStockDefault:      getInt(v, "LOW_STOCK_DEFAULT", 10),
		},
		Mock: MockConfig{
			Host:       getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:       getInt(v, "HTTP_PORT", 8000),
			JWTSecret:  getString(v, "JWT_SECRET", "dev-only-secret"),
			JWTMinutes: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			JWTIssuer:  getString(v, "JWT_ISSUER", "inventario-mockapi"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

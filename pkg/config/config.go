package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Stores soportados para la tabla de productos.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   string // memory | postgres
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL (solo aplica con STORE=postgres).
// Si DatabaseURL no está vacío se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DatabaseURL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig almacenamiento de sesiones en Redis. Addr vacío = sesiones en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig cookie de sesión del dashboard.
type SessionConfig struct {
	CookieName string
	ExpMinutes int
}

// AuthConfig tabla estática de usuarios demo.
type AuthConfig struct {
	Users []UserCredential
}

// UserCredential una credencial username:password:role de AUTH_USERS.
type UserCredential struct {
	Username string
	Password string
	Role     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORE, DATABASE_URL, AUTH_USERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	users, err := parseUsers(getString(v, "AUTH_USERS", defaultUsers))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "warehouse-picking-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: getString(v, "STORE", StoreMemory),
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "warehouse"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE", "warehouse_session"),
			ExpMinutes: getInt(v, "SESSION_EXP_MINUTES", 480),
		},
		Auth: AuthConfig{Users: users},
	}

	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return nil, fmt.Errorf("config: STORE inválido %q (memory|postgres)", cfg.Store)
	}
	return cfg, nil
}

// defaultUsers credenciales demo de la instalación original de bodega.
const defaultUsers = "admin:admin123:admin,operator:operator123:user"

// parseUsers parsea AUTH_USERS con formato "user:password:role,user:password:role".
func parseUsers(raw string) ([]UserCredential, error) {
	var users []UserCredential
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("config: AUTH_USERS entrada inválida %q (esperado user:password:role)", entry)
		}
		users = append(users, UserCredential{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
			Role:     strings.TrimSpace(parts[2]),
		})
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("config: AUTH_USERS vacío")
	}
	return users, nil
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

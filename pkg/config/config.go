package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados (STORE_DRIVER).
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Defaults DefaultsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria para el historial diario (ej. America/Bogota)
}

// StoreConfig selecciona el backend de persistencia.
type StoreConfig struct {
	Driver string // memory, redis, postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AppName     string // application_name visible en pg_stat_activity
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
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

// RedisConfig configuración del almacén clave-valor en Redis.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	PoolSize  int
	KeyPrefix string
}

// AMQPConfig configuración de eventos de cocina (RabbitMQ). URL vacía = sin publicación.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// DefaultsConfig valores iniciales de la configuración general del local.
type DefaultsConfig struct {
	RestaurantName string
	EventType      string
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "comanda-eventos"),
			Timezone: getString(v, "TIMEZONE", "Local"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "comanda"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 8)),
			MinConns:    int32(getInt(v, "DB_MIN_CONNS", 1)),
		},
		Redis: RedisConfig{
			Addr:      getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:  getString(v, "REDIS_PASSWORD", ""),
			DB:        getInt(v, "REDIS_DB", 0),
			PoolSize:  getInt(v, "REDIS_POOL_SIZE", 10),
			KeyPrefix: getString(v, "REDIS_KEY_PREFIX", ""),
		},
		AMQP: AMQPConfig{
			URL:      getString(v, "AMQP_URL", ""),
			Exchange: getString(v, "AMQP_EXCHANGE", "kitchen_topic"),
		},
		Defaults: DefaultsConfig{
			RestaurantName: getString(v, "DEFAULT_RESTAURANT_NAME", "Mi Restaurante"),
			EventType:      getString(v, "DEFAULT_EVENT_TYPE", "Evento Gastronómico"),
		},
	}

	cfg.DB.AppName = cfg.App.Name

	switch cfg.Store.Driver {
	case StoreMemory, StoreRedis, StorePostgres:
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

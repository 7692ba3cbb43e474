// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: debug, release ou test (default: release)
//
// ## Armazenamento
//   - STORAGE_BACKEND: postgres, sqlite, typesense ou memory (default: sqlite)
//   - SQLITE_PATH: Caminho do arquivo SQLite (default: data/codigos.db)
//   - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSL_MODE: PostgreSQL
//   - TYPESENSE_HOST, TYPESENSE_PORT, TYPESENSE_API_KEY, TYPESENSE_PROTOCOL: Typesense
//
// ## Alocação de números
//   - ALLOCATION_MAX_ATTEMPTS: Tentativas em caso de número já usado (default: 5)
//   - ALLOCATION_INITIAL_BACKOFF: Espera inicial entre tentativas (default: 20ms)
//   - ALLOCATION_MAX_BACKOFF: Espera máxima entre tentativas (default: 500ms)
//
// ## Observabilidade
//   - LOG_LEVEL: debug, info, warn ou error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
//
// ## Dicionário
//   - SEED_ON_STARTUP: Cadastra o dicionário padrão ao iniciar (default: true)
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backends de armazenamento suportados
const (
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendTypesense = "typesense"
	BackendMemory    = "memory"
)

type Config struct {
	ServerPort string
	GinMode    string

	StorageBackend string
	SQLitePath     string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	LogLevel  string
	LogFormat string

	Allocation AllocationConfig

	SeedOnStartup bool
}

// AllocationConfig controla as novas tentativas da alocação automática
type AllocationConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Load lê a configuração do ambiente (e do .env, se existir) e a valida
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		SQLitePath:     getEnv("SQLITE_PATH", "data/codigos.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "codigos"),
		DBUser:     getEnv("DB_USER", "codigos"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		Allocation: AllocationConfig{
			MaxAttempts:    getEnvInt("ALLOCATION_MAX_ATTEMPTS", 5),
			InitialBackoff: getEnvDuration("ALLOCATION_INITIAL_BACKOFF", 20*time.Millisecond),
			MaxBackoff:     getEnvDuration("ALLOCATION_MAX_BACKOFF", 500*time.Millisecond),
		},

		SeedOnStartup: getEnv("SEED_ON_STARTUP", "true") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig é como Load, mas encerra o processo se a configuração for inválida
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	return cfg
}

// Validate verifica combinações inválidas de variáveis
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case BackendPostgres:
		if c.DBName == "" || c.DBUser == "" {
			errs = append(errs, errors.New("DB_NAME e DB_USER são obrigatórios para STORAGE_BACKEND=postgres"))
		}
	case BackendTypesense:
		if c.TypesenseAPIKey == "" {
			errs = append(errs, errors.New("TYPESENSE_API_KEY é obrigatória para STORAGE_BACKEND=typesense"))
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH é obrigatório para STORAGE_BACKEND=sqlite"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND desconhecido: %q", c.StorageBackend))
	}

	if c.Allocation.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("ALLOCATION_MAX_ATTEMPTS deve ser >= 1, recebido %d", c.Allocation.MaxAttempts))
	}
	if c.Allocation.InitialBackoff < 0 || c.Allocation.MaxBackoff < c.Allocation.InitialBackoff {
		errs = append(errs, errors.New("ALLOCATION_MAX_BACKOFF deve ser maior ou igual a ALLOCATION_INITIAL_BACKOFF"))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE desconhecido: %q", c.GinMode))
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT desconhecido: %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// DatabaseDSN monta a connection string do pgxpool
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// MigrateURL monta a URL do driver pgx5 do golang-migrate
func (c *Config) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(c.DatabaseDSN(), "postgres")
}

// TypesenseServerURL monta a URL do servidor Typesense
func (c *Config) TypesenseServerURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

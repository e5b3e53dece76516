package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища сессий
const (
	SessionDriverMemory   = "memory"
	SessionDriverPostgres = "postgres"
	SessionDriverDynamoDB = "dynamodb"
)

// Переменные окружения, перекрывающие секреты из файла
const (
	envSendGridAPIKey   = "SENDGRID_API_KEY"
	envGeoNamesUsername = "GEONAMES_USERNAME"
	envDBPassword       = "DB_PASSWORD"
	envAWSAccessKeyID   = "AWS_ACCESS_KEY_ID"
	envAWSSecretKey     = "AWS_SECRET_ACCESS_KEY"
)

var (
	// ErrInvalidConfig возвращается, когда значения конфигурации недопустимы
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server         ServerConfig     `toml:"server"`
	Logs           LogsConfig       `toml:"logs"`
	Metrics        MetricsConfig    `toml:"metrics"`
	Session        SessionConfig    `toml:"session"`
	Database       DatabaseConfig   `toml:"database"`
	DynamoDB       DynamoDBConfig   `toml:"dynamodb"`
	VehicleCatalog HTTPClientConfig `toml:"vehicle_catalog"`
	Georef         HTTPClientConfig `toml:"georef"`
	Zippopotam     HTTPClientConfig `toml:"zippopotam"`
	GeoNames       GeoNamesConfig   `toml:"geonames"`
	Mailer         MailerConfig     `toml:"mailer"`
	Search         SearchConfig     `toml:"search"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SessionConfig struct {
	TTLMinutes  int    `toml:"ttl_minutes"`
	Driver      string `toml:"driver"`
	MaxEntries  int    `toml:"max_entries"`
	OfflineMode bool   `toml:"offline_mode"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type DynamoDBConfig struct {
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	Table           string `toml:"table"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

// HTTPClientConfig адрес и таймаут (в секундах) внешнего справочного сервиса
type HTTPClientConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type GeoNamesConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	Username string `toml:"username"`
}

type MailerConfig struct {
	APIKey            string `toml:"api_key"`
	Host              string `toml:"host"`
	FromEmail         string `toml:"from_email"`
	FromName          string `toml:"from_name"`
	QuoteTemplateID   string `toml:"quote_template_id"`
	ContactTemplateID string `toml:"contact_template_id"`
	ContactToEmail    string `toml:"contact_to_email"`
	Sandbox           bool   `toml:"sandbox"`
}

type SearchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// Load читает .env (если есть) и TOML-файл, применяет значения по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envSendGridAPIKey); v != "" {
		c.Mailer.APIKey = v
	}
	if v := os.Getenv(envGeoNamesUsername); v != "" {
		c.GeoNames.Username = v
	}
	if v := os.Getenv(envDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envAWSAccessKeyID); v != "" {
		c.DynamoDB.AccessKeyID = v
	}
	if v := os.Getenv(envAWSSecretKey); v != "" {
		c.DynamoDB.SecretAccessKey = v
	}
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 15)
	setInt(&c.Server.WriteTimeout, 30)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "smc-quote-service")

	setInt(&c.Session.TTLMinutes, 120)
	setString(&c.Session.Driver, SessionDriverMemory)
	c.Session.Driver = strings.ToLower(strings.TrimSpace(c.Session.Driver))
	setInt(&c.Session.MaxEntries, 256)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 10)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.DynamoDB.Region, "us-east-1")
	setString(&c.DynamoDB.Table, "quote_sessions")

	setString(&c.VehicleCatalog.URL, "https://vpic.nhtsa.dot.gov/api/vehicles")
	setInt(&c.VehicleCatalog.Timeout, 5)
	setString(&c.Georef.URL, "https://apis.datos.gob.ar/georef/api")
	setInt(&c.Georef.Timeout, 5)
	setString(&c.Zippopotam.URL, "https://api.zippopotam.us")
	setInt(&c.Zippopotam.Timeout, 5)
	setString(&c.GeoNames.URL, "https://secure.geonames.org")
	setInt(&c.GeoNames.Timeout, 5)

	setString(&c.Mailer.Host, "https://api.sendgrid.com")
	setString(&c.Mailer.FromName, "Cotizador de Seguros")

	setInt(&c.Search.DebounceMs, 300)
}

// Validate проверяет значения, которые не могут быть исправлены значениями по умолчанию
func (c *Config) Validate() error {
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverPostgres, SessionDriverDynamoDB:
	default:
		return fmt.Errorf("%w: unknown session driver %q", ErrInvalidConfig, c.Session.Driver)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Search.DebounceMs < 300 {
		return fmt.Errorf("%w: search debounce must be at least 300ms, got %d", ErrInvalidConfig, c.Search.DebounceMs)
	}

	if c.Session.TTLMinutes < 0 || c.Session.MaxEntries < 0 {
		return fmt.Errorf("%w: session limits must not be negative", ErrInvalidConfig)
	}

	return nil
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if strings.TrimSpace(*v) == "" {
		*v = def
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig

	// Legal office specifics
	Intimacao      IntimacaoConfig
	LegalData      LegalDataConfig
	GoogleCalendar GoogleCalendarConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type AuthConfig struct {
	APIKeys []string
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int
	MinConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers      []string
	GroupID      string
	SyncTopic    string // andamentos pushed by the provider
	PrazoTopic   string // prazo domain events
	BatchSize    int
	BatchTimeout time.Duration
}

type IntimacaoConfig struct {
	Timezone string
}

type LegalDataConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	ReminderMinutes []int64
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")
	cfg.Auth.APIKeys = splitList(viper.GetString("auth.api_keys"))

	// Infrastructure
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt("postgres.min_conns")
	cfg.Postgres.MaxConnIdleTime = viper.GetDuration("postgres.max_conn_idle_time")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")
	cfg.Redis.TTL = viper.GetDuration("redis.ttl")

	cfg.Kafka.Brokers = splitList(viper.GetString("kafka.brokers"))
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")
	cfg.Kafka.SyncTopic = viper.GetString("kafka.sync_topic")
	cfg.Kafka.PrazoTopic = viper.GetString("kafka.prazo_topic")
	cfg.Kafka.BatchSize = viper.GetInt("kafka.batch_size")
	cfg.Kafka.BatchTimeout = viper.GetDuration("kafka.batch_timeout")

	// Legal office specifics
	cfg.Intimacao.Timezone = viper.GetString("intimacao.timezone")

	cfg.LegalData.URL = viper.GetString("legaldata.url")
	cfg.LegalData.Token = viper.GetString("legaldata.token")
	if token := viper.GetString("legaldata_token"); token != "" {
		cfg.LegalData.Token = token
	}
	cfg.LegalData.Timeout = viper.GetDuration("legaldata.timeout")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	for _, m := range viper.GetIntSlice("google_calendar.reminder_minutes") {
		cfg.GoogleCalendar.ReminderMinutes = append(cfg.GoogleCalendar.ReminderMinutes, int64(m))
	}
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 30)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.max_conn_idle_time", "5m")
	viper.SetDefault("postgres.max_conn_lifetime", "30m")

	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.ttl", "5m")

	viper.SetDefault("kafka.group_id", "legal-office-andamentos")
	viper.SetDefault("kafka.sync_topic", "andamentos.sync")
	viper.SetDefault("kafka.prazo_topic", "prazo.created")
	viper.SetDefault("kafka.batch_size", 50)
	viper.SetDefault("kafka.batch_timeout", "2s")

	viper.SetDefault("intimacao.timezone", "America/Sao_Paulo")
	viper.SetDefault("legaldata.timeout", "30s")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.reminder_minutes", []int{1440, 4320})

	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if cfg.Intimacao.Timezone == "" {
		return fmt.Errorf("intimacao.timezone is required")
	}
	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		return fmt.Errorf("webhook.secret is required when webhook.enabled is true")
	}
	return nil
}

// splitList splits a comma separated value, dropping empty items.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

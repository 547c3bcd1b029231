package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	RabbitMQ   RabbitMQConfig   `toml:"rabbitmq"`
	Razorpay   RazorpayConfig   `toml:"razorpay"`
	SMTP       SMTPConfig       `toml:"smtp"`
	SMS        SMSConfig        `toml:"sms"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Auth       AuthConfig       `toml:"auth"`
	Booking    BookingConfig    `toml:"booking"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
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

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type RazorpayConfig struct {
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Currency  string `toml:"currency"`
}

type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type SMSConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	From       string `toml:"from"`
	Timeout    int    `toml:"timeout"`
}

type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Folder    string `toml:"folder"`
}

type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenTTL    int    `toml:"token_ttl_hours"`
	OTPTTL      int    `toml:"otp_ttl_minutes"`
	OTPAttempts int    `toml:"otp_max_attempts"`
}

// TokenDuration время жизни JWT
func (a AuthConfig) TokenDuration() time.Duration {
	return time.Duration(a.TokenTTL) * time.Hour
}

// OTPDuration время жизни OTP
func (a AuthConfig) OTPDuration() time.Duration {
	return time.Duration(a.OTPTTL) * time.Minute
}

type BookingConfig struct {
	DefaultSlotPrice float64 `toml:"default_slot_price"`
	TurfName         string  `toml:"turf_name"`
	SweepSchedule    string  `toml:"sweep_schedule"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// Переменные окружения, перекрывающие секреты из файла
const (
	EnvDBPassword       = "DB_PASSWORD"
	EnvRazorpayKeyID    = "RAZORPAY_KEY_ID"
	EnvRazorpaySecret   = "RAZORPAY_KEY_SECRET"
	EnvJWTSecret        = "JWT_SECRET"
	EnvSMTPPassword     = "SMTP_PASSWORD"
	EnvSMSAuthToken     = "SMS_AUTH_TOKEN"
	EnvCloudinarySecret = "CLOUDINARY_API_SECRET"
	EnvHTTPPort         = "HTTP_PORT"
)

// ErrInvalidConfig возвращается, если обязательные параметры не заданы
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load читает конфигурацию из TOML файла.
// Перед этим подгружается .env (если есть), значения окружения перекрывают секреты
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:     LogsConfig{File: "logs/app.log", Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "turf-booking-service"},
		RabbitMQ: RabbitMQConfig{Exchange: "turf.bookings"},
		Razorpay: RazorpayConfig{Currency: "INR"},
		SMTP:     SMTPConfig{Port: 587},
		SMS:      SMSConfig{BaseURL: "https://api.twilio.com", Timeout: 10},
		Auth:     AuthConfig{TokenTTL: 24 * 7, OTPTTL: 10, OTPAttempts: 5},
		Booking:  BookingConfig{DefaultSlotPrice: 1500, TurfName: "Dhaval Mart Turf", SweepSchedule: "@every 1m"},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 60,
			Burst:             20,
		},
	}
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvDBPassword:       &c.Database.Password,
		EnvRazorpayKeyID:    &c.Razorpay.KeyID,
		EnvRazorpaySecret:   &c.Razorpay.KeySecret,
		EnvJWTSecret:        &c.Auth.JWTSecret,
		EnvSMTPPassword:     &c.SMTP.Password,
		EnvSMSAuthToken:     &c.SMS.AuthToken,
		EnvCloudinarySecret: &c.Cloudinary.APISecret,
	}
	for env, target := range overrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*target = v
		}
	}

	if v, ok := os.LookupEnv(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		problems = append(problems, "database.host, database.user and database.dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required")
	}
	if c.Auth.OTPAttempts <= 0 {
		problems = append(problems, "auth.otp_max_attempts must be positive")
	}
	if c.Razorpay.KeyID == "" || c.Razorpay.KeySecret == "" {
		problems = append(problems, "razorpay.key_id and razorpay.key_secret are required")
	}
	if c.Booking.DefaultSlotPrice <= 0 {
		problems = append(problems, "booking.default_slot_price must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		problems = append(problems, "metrics.path is required when metrics are enabled")
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		problems = append(problems, "rabbitmq.url is required when rabbitmq is enabled")
	}
	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.From == "") {
		problems = append(problems, "smtp.host and smtp.from are required when smtp is enabled")
	}
	if c.SMS.Enabled && (c.SMS.AccountSID == "" || c.SMS.AuthToken == "" || c.SMS.From == "") {
		problems = append(problems, "sms.account_sid, sms.auth_token and sms.from are required when sms is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit.requests_per_minute and rate_limit.burst must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

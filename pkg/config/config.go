package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const (
	megabyte = 1 << 20
)

type Config struct {
	HTTPPort         int      `env:"HTTP_PORT" envDefault:"5000"`
	PostgresDSN      string   `env:"POSTGRES_DSN,notEmpty"`
	PostgresMaxConns int32    `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	CorsOrigins      []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	JWT              JWTConfig
	OTP              OTPConfig
	Redis            RedisConfig
	Mailer           MailerConfig
	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"kafka:9092"`
	KafkaTopic       string   `env:"KAFKA_REPORTS_TOPIC" envDefault:"report-events"`
	Uploads          UploadsConfig
}

type JWTConfig struct {
	Secret      string        `env:"JWT_SECRET,notEmpty"`
	TokenExpiry time.Duration `env:"JWT_TOKEN_EXPIRY" envDefault:"1h"`
}

type OTPConfig struct {
	CodeTTL              time.Duration `env:"OTP_CODE_TTL" envDefault:"5m"`
	Retention            time.Duration `env:"OTP_RETENTION" envDefault:"24h"`
	JobDeleteOtpInterval time.Duration `env:"JOB_DELETE_OTP_INTERVAL" envDefault:"1h"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB" envDefault:"0"`
	UnreadCacheTTL time.Duration `env:"UNREAD_CACHE_TTL" envDefault:"10m"`
}

type MailerConfig struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Nagar Sahayata"`
}

type UploadsConfig struct {
	Dir                 string `env:"UPLOADS_DIR" envDefault:"uploads/profile-images"`
	PublicPath          string `env:"UPLOADS_PUBLIC_PATH" envDefault:"/uploads/profile-images"`
	ProfileImageMaxSize int64  `env:"PROFILE_IMAGE_MAX_SIZE" envDefault:"2097152"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if c.Uploads.ProfileImageMaxSize <= 0 {
		c.Uploads.ProfileImageMaxSize = 2 * megabyte
	}

	if c.OTP.CodeTTL <= 0 {
		return Config{}, fmt.Errorf("OTP_CODE_TTL must be positive, got %s", c.OTP.CodeTTL)
	}

	return c, nil
}

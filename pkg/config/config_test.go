package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/portal")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.New("testdata/missing.env")
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.HTTPPort)
	require.Equal(t, time.Hour, cfg.JWT.TokenExpiry)
	require.Equal(t, 5*time.Minute, cfg.OTP.CodeTTL)
	require.Equal(t, 24*time.Hour, cfg.OTP.Retention)
	require.Equal(t, int64(2*1024*1024), cfg.Uploads.ProfileImageMaxSize)
	require.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "/uploads/profile-images", cfg.Uploads.PublicPath)
}

func TestNew_RequiresSecrets(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/portal")
	t.Setenv("JWT_SECRET", "")

	_, err := config.New("testdata/missing.env")
	require.Error(t, err)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/portal")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("OTP_CODE_TTL", "2m")

	cfg, err := config.New("testdata/missing.env")
	require.NoError(t, err)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 2*time.Minute, cfg.OTP.CodeTTL)
}

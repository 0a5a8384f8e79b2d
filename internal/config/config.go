package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr string `envconfig:"ADDR" default:"0.0.0.0:8080"`

	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     string `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" required:"true"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	PostgresDB       string `envconfig:"POSTGRES_DB" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Token lifetime; the upstream default is measured in weeks.
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"336h"`

	LoginRedirectURL string   `envconfig:"LOGIN_REDIRECT_URL" default:"/api/v1"`
	CookieDomain     string   `envconfig:"COOKIE_DOMAIN" default:""`
	CORSOrigins      []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

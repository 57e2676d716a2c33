package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string        `env:"APP_ENV" env-default:"development"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	Addr           string        `env:"SERVER_ADDR" env-default:":8088"`
	StorageBackend string        `env:"STORAGE_BACKEND" env-default:"file"`
	PostgresDSN    string        `env:"POSTGRES_DSN"`
	EntriesFile    string        `env:"ENTRIES_FILE" env-default:"data/entries.json"`
	UsersFile      string        `env:"USERS_FILE" env-default:"data/users.json"`
	JWTSecret      string        `env:"JWT_SECRET" env-default:"dev_secret"`
	JWTIssuer      string        `env:"JWT_ISSUER" env-default:"pooprecorder"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"2h"`
}

// Load reads configuration from the environment, with an optional .env file
// taking lower precedence.
func Load() (*Config, error) {
	var cfg Config
	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.StorageBackend == "postgres" && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.StorageBackend == "file" && (c.EntriesFile == "" || c.UsersFile == "") {
		return errors.New("file storage requires ENTRIES_FILE and USERS_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env == "production" && c.JWTSecret == "dev_secret" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Redis    Redis  `yaml:"redis"`
	Cache    Cache  `yaml:"cache"`
	CORS     CORS   `yaml:"cors"`
	Mover    Mover  `yaml:"mover"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

type Cache struct {
	Size int `yaml:"size" env:"CACHE_SIZE" env-default:"4096"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed-origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

// Mover is where a remote-mode session sends its move requests.
type Mover struct {
	URL     string        `yaml:"url" env:"MOVER_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"MOVER_TIMEOUT" env-default:"5s"`
	Retries int           `yaml:"retries" env:"MOVER_RETRIES" env-default:"2"`
}

// MustLoad - load all configurations in config.yml file, a local .env file and the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

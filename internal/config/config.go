package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis      Redis      `yaml:"redis"`
	Engine     Engine     `yaml:"engine"`
	Commentary Commentary `yaml:"commentary"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	CacheTTL time.Duration `yaml:"cache-ttl" env:"REDIS_CACHE_TTL" env-default:"24h"`
}

type Engine struct {
	// Seed fixes the random source; 0 seeds from the runtime.
	Seed              uint64 `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
	DefaultDifficulty string `yaml:"default-difficulty" env:"ENGINE_DEFAULT_DIFFICULTY" env-default:"hard"`
	CacheDisabled     bool   `yaml:"cache-disabled" env:"ENGINE_CACHE_DISABLED"`
}

type Commentary struct {
	APIKey  string        `yaml:"api-key" env:"GEMINI_API_KEY" env-default:""`
	Model   string        `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	Timeout time.Duration `yaml:"timeout" env:"COMMENTARY_TIMEOUT" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

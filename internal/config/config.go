package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string `yaml:"http-port" env:"PORT" env-default:"8000"`
	StaticDir      string `yaml:"static-dir" env:"STATIC_DIR" env-default:"../frontend/dist"`
	DictionaryPath string `yaml:"dictionary-path" env:"DICTIONARY_PATH" env-default:""`
	TileLimit      int    `yaml:"tile-limit" env:"TILE_LIMIT" env-default:"7"`
	Room           Room   `yaml:"room"`
	Redis          Redis  `yaml:"redis"`
}

type Room struct {
	InboxSize  int `yaml:"inbox-size" env:"ROOM_INBOX_SIZE" env-default:"64"`
	SendBuffer int `yaml:"send-buffer" env:"ROOM_SEND_BUFFER" env-default:"16"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TurnLogTTL time.Duration `yaml:"turn-log-ttl" env:"REDIS_TURN_LOG_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path and applies environment overrides. Without a file only the
// environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

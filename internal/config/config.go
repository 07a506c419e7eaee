package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	MoveBookMemory = "memory"
	MoveBookRedis  = "redis"
)

type Config struct {
	LogLevel      string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HumanMark     string   `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	ComputerFirst bool     `yaml:"computer-first" env:"COMPUTER_FIRST" env-default:"false"`
	MoveBook      MoveBook `yaml:"move-book"`
}

type MoveBook struct {
	Driver string        `yaml:"driver" env:"MOVE_BOOK_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"MOVE_BOOK_TTL" env-default:"24h"`
	Redis  Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
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

	if _, err := config.GetHumanMark(); err != nil {
		return nil, fmt.Errorf("invalid human-mark: %w", err)
	}

	switch config.MoveBook.Driver {
	case MoveBookMemory, MoveBookRedis:
	default:
		return nil, fmt.Errorf("unknown move-book driver %q", config.MoveBook.Driver)
	}

	return config, nil
}

func (that *Config) GetHumanMark() (entity.Mark, error) {
	return entity.ParseMark(that.HumanMark)
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

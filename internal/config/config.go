package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	KindHuman     = "human"
	KindRandom    = "random"
	KindHeuristic = "heuristic"
)

var ErrUnknownPlayerKind = errors.New("unknown player kind")

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string        `yaml:"log-file" env:"LOG_FILE" env-default:""`
	GridSize    int           `yaml:"grid-size" env:"GRID_SIZE" env-default:"0"`
	MoveTimeout time.Duration `yaml:"move-timeout" env:"MOVE_TIMEOUT" env-default:"0s"`
	ClearScreen bool          `yaml:"clear-screen" env:"CLEAR_SCREEN"`
	AI          AI            `yaml:"ai"`
	Players     []Player      `yaml:"players"`
	Redis       Redis         `yaml:"redis"`
}

type AI struct {
	MyStreakMultiplier    float64 `yaml:"my-streak-multiplier" env:"AI_MY_STREAK_MULTIPLIER" env-default:"1"`
	EnemyStreakMultiplier float64 `yaml:"enemy-streak-multiplier" env:"AI_ENEMY_STREAK_MULTIPLIER" env-default:"1"`
}

type Player struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Kind   string `yaml:"kind"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// DefaultPlayers - one human and one heuristic computer.
func DefaultPlayers() []Player {
	return []Player{
		{Name: "Human", Symbol: "O", Kind: KindHuman},
		{Name: "Computer - Better", Symbol: "X", Kind: KindHeuristic},
	}
}

// MustLoad - loads config.yml at path, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks the roster.
func (that *Config) Validate() error {
	for _, p := range that.Players {
		switch p.Kind {
		case KindHuman, KindRandom, KindHeuristic:
		default:
			return fmt.Errorf("%w: %q for player %s", ErrUnknownPlayerKind, p.Kind, p.Name)
		}
	}

	return nil
}

// SymbolRune - the first rune of the symbol, '?' when none is set.
func (that *Player) SymbolRune() rune {
	for _, r := range that.Symbol {
		return r
	}

	return '?'
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package playfield

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config holds the constants fixed at startup. Colors are packed 0xRRGGBB and
// are read as decimal integers from files and the environment.
type Config struct {
	ScreenWidth      int           `config:"PIXECS_SCREEN_WIDTH"`
	ScreenHeight     int           `config:"PIXECS_SCREEN_HEIGHT"`
	TickInterval     time.Duration `config:"PIXECS_TICK_INTERVAL"`
	PlayerSpeed      int32         `config:"PIXECS_PLAYER_SPEED"`
	PlayerBoostSpeed int32         `config:"PIXECS_PLAYER_BOOST_SPEED"`
	PlayerSize       uint32        `config:"PIXECS_PLAYER_SIZE"`
	PlayerColor      uint32        `config:"PIXECS_PLAYER_COLOR"`
	Background       uint32        `config:"PIXECS_BACKGROUND"`
	EnemyCount       int           `config:"PIXECS_ENEMY_COUNT"`
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1920,
		ScreenHeight:     1080,
		TickInterval:     16 * time.Millisecond,
		PlayerSpeed:      12,
		PlayerBoostSpeed: 24,
		PlayerSize:       24,
		PlayerColor:      0xFF1111,
		Background:       0x00AA11,
		EnemyCount:       8,
	}
}

// LoadConfig starts from DefaultConfig, overlays the KEY=VALUE file at path
// when it exists, then the environment, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	builder := config.FromEnv()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			builder = config.From(path).FromEnv()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, eris.Wrapf(err, "failed to read config file %s", path)
		}
	}
	if err := builder.To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first field that cannot drive a playfield.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return eris.Wrapf(ErrInvalidConfig, "screen must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.TickInterval <= 0:
		return eris.Wrapf(ErrInvalidConfig, "tick interval must be positive, got %s", c.TickInterval)
	case c.PlayerSpeed < 0 || c.PlayerBoostSpeed < 0:
		return eris.Wrapf(ErrInvalidConfig, "player speeds must not be negative, got %d/%d", c.PlayerSpeed, c.PlayerBoostSpeed)
	case int64(c.PlayerSize) > int64(c.ScreenWidth) || int64(c.PlayerSize) > int64(c.ScreenHeight):
		return eris.Wrapf(ErrInvalidConfig, "player size %d does not fit the screen", c.PlayerSize)
	case c.PlayerColor > 0xFFFFFF || c.Background > 0xFFFFFF:
		return eris.Wrap(ErrInvalidConfig, "colors must be 0xRRGGBB")
	case c.EnemyCount < 0:
		return eris.Wrapf(ErrInvalidConfig, "enemy count must not be negative, got %d", c.EnemyCount)
	}
	return nil
}

// Screen returns the configured playfield size.
func (c Config) Screen() Screen {
	return Screen{Width: c.ScreenWidth, Height: c.ScreenHeight}
}

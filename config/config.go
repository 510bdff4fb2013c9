package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "termtactoe/config.json"
	logFile = "termtactoe/termtactoe.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds colour names ("cyan") or hex values ("#61AFEF").
type ConfigColors struct {
	Background string `json:"background" env:"TERMTACTOE_COLOR_BACKGROUND" env-description:"screen background colour"`
	Cell       string `json:"cell" env:"TERMTACTOE_COLOR_CELL" env-description:"board cell colour"`
	Line       string `json:"line" env:"TERMTACTOE_COLOR_LINE" env-description:"grid line colour"`
	X          string `json:"x" env:"TERMTACTOE_COLOR_X" env-description:"colour of X marks"`
	O          string `json:"o" env:"TERMTACTOE_COLOR_O" env-description:"colour of O marks"`
	Cursor     string `json:"cursor" env:"TERMTACTOE_COLOR_CURSOR" env-description:"cursor cell colour"`
	Highlight  string `json:"highlight" env:"TERMTACTOE_COLOR_HIGHLIGHT" env-description:"winning line flash colour"`
	Accent     string `json:"accent" env:"TERMTACTOE_COLOR_ACCENT" env-description:"button and title accent colour"`
}

type ConfigSymbols struct {
	X rune `json:"x"`
	O rune `json:"o"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

type SoundConfig struct {
	Enabled bool `json:"enabled" env:"TERMTACTOE_SOUND" env-description:"ring the terminal bell on moves and results"`
}

type AnimationConfig struct {
	FlashCount      int `json:"flash_count" env:"TERMTACTOE_FLASH_COUNT" env-description:"how often the winning line flashes"`
	FlashIntervalMS int `json:"flash_interval_ms" env:"TERMTACTOE_FLASH_INTERVAL_MS" env-description:"milliseconds per flash phase"`
}

// FlashInterval returns the flash phase length as a duration.
func (a AnimationConfig) FlashInterval() time.Duration {
	return time.Duration(a.FlashIntervalMS) * time.Millisecond
}

// PlayersConfig holds the names prefilled on the setup screen.
type PlayersConfig struct {
	X string `json:"x" env:"TERMTACTOE_PLAYER_X" env-description:"default name for the X player"`
	O string `json:"o" env:"TERMTACTOE_PLAYER_O" env-description:"default name for the O player"`
}

type LogConfig struct {
	Level string `json:"level" env:"TERMTACTOE_LOG_LEVEL" env-description:"debug, info, warn or error"`
	File  string `json:"file" env:"TERMTACTOE_LOG_FILE" env-description:"log file path (default in the XDG cache dir)"`
}

type Config struct {
	Theme     Theme           `json:"theme"`
	Sound     SoundConfig     `json:"sound"`
	Animation AnimationConfig `json:"animation"`
	Players   PlayersConfig   `json:"players"`
	Log       LogConfig       `json:"log"`

	path string
}

// InitConfig loads the config file from the XDG config dirs, if there is one,
// on top of DefaultConfig and applies TERMTACTOE_* environment overrides.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return LoadConfig(absPath)
}

// LoadConfig reads the JSON config at path. An empty path means defaults
// plus environment overrides.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		// Save writes JSON back to the same file
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil, &InvalidConfig{fmt.Sprintf("config file %s is not a .json file", path)}
		}
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		config.path = path
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	colors := c.Theme.Colors
	for name, value := range map[string]string{
		"background": colors.Background,
		"cell":       colors.Cell,
		"line":       colors.Line,
		"x":          colors.X,
		"o":          colors.O,
		"cursor":     colors.Cursor,
		"highlight":  colors.Highlight,
		"accent":     colors.Accent,
	} {
		if ParseColor(value) == tcell.ColorDefault {
			return &InvalidConfig{fmt.Sprintf("unknown %s colour %q", name, value)}
		}
	}
	for _, r := range []rune{c.Theme.Symbols.X, c.Theme.Symbols.O} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 0-31 and 127-159 are not allowed"}
		}
	}
	if c.Animation.FlashCount < 0 || c.Animation.FlashCount > 20 {
		return &InvalidConfig{"flash_count must be between 0 and 20"}
	}
	if c.Animation.FlashIntervalMS < 50 || c.Animation.FlashIntervalMS > 2000 {
		return &InvalidConfig{"flash_interval_ms must be between 50 and 2000"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// ParseColor resolves a colour name or #rrggbb value. Unknown values yield
// tcell.ColorDefault.
func ParseColor(s string) tcell.Color {
	return tcell.GetColor(strings.ToLower(strings.TrimSpace(s)))
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the file it was loaded from, or to the
// user's XDG config dir.
func (c *Config) Save() error {
	absPath := c.path
	if absPath == "" {
		var err error
		absPath, err = xdg.ConfigFile(cfgFile)
		if err != nil {
			return fmt.Errorf("locate config file: %w", err)
		}
	}
	if err := saveCfgFile(absPath, c, 0664); err != nil {
		return err
	}
	c.path = absPath
	return nil
}

// LogPath returns the configured log file, defaulting to the XDG cache dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.CacheFile(logFile)
}

// Env describes the supported environment overrides.
func Env() (string, error) {
	cfg := DefaultConfig
	return cleanenv.GetDescription(&cfg, nil)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool {
	var invalid *InvalidConfig
	return errors.As(err, &invalid)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/input/types"
)

// EnvPrefix prefixes environment overrides, e.g. MULTISELECT_TRIGGER=button
const EnvPrefix = "MULTISELECT"

// Config represents the application configuration
type Config struct {
	Version         int          `toml:"version"`
	Debug           bool         `toml:"debug"`
	Trigger         string       `toml:"trigger"` // "input" or "button"
	AllowDuplicates bool         `toml:"allow_duplicates"`
	Keymap          KeymapConfig `toml:"keymap"`
	UISettings      UISettings   `toml:"ui"`
	Items           []string     `toml:"items"`    // dropdown candidates
	Selected        []string     `toml:"selected"` // selection restored at startup
}

// KeymapConfig lists the key names bound to each engine command
type KeymapConfig struct {
	Prev       []string `toml:"prev"`
	Next       []string `toml:"next"`
	Remove     []string `toml:"remove"`
	RemoveLast []string `toml:"remove_last"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp       bool `toml:"show_help"`
	EventLogLimit  int  `toml:"event_log_limit"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// TriggerKind parses the Trigger field
func (c *Config) TriggerKind() (domain.TriggerKind, error) {
	return domain.ParseTriggerKind(c.Trigger)
}

// Keys builds the engine keymap. Empty lists fall back to the defaults.
func (c *Config) Keys() types.Keymap {
	def := DefaultConfig().Keymap
	pick := func(keys, fallback []string) []string {
		if len(keys) == 0 {
			return fallback
		}
		return keys
	}
	return types.NewKeymap(
		pick(c.Keymap.Prev, def.Prev),
		pick(c.Keymap.Next, def.Next),
		pick(c.Keymap.Remove, def.Remove),
		pick(c.Keymap.RemoveLast, def.RemoveLast),
	)
}

// Validate reports settings the engine cannot run with
func (c *Config) Validate() error {
	if _, err := c.TriggerKind(); err != nil {
		return err
	}
	if c.UISettings.EventLogLimit < 0 {
		return fmt.Errorf("ui.event_log_limit must not be negative, got %d", c.UISettings.EventLogLimit)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	env      *viper.Viper
}

// NewConfigService creates a config service for the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return NewConfigServiceForPath(filepath.Join(configDir, "multiselect", "config.toml"), nil)
}

// NewConfigServiceForPath creates a config service bound to path
func NewConfigServiceForPath(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
		env:      newEnv(),
	}
}

// newEnv binds the settings that may be overridden from the environment
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"debug", "trigger", "allow_duplicates", "ui.show_help", "ui.event_log_limit"} {
		_ = v.BindEnv(key)
	}
	return v
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		cs.applyEnv(cfg)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cs.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyEnv overlays MULTISELECT_* environment variables
func (cs *configService) applyEnv(cfg *Config) {
	v := cs.env
	if v == nil {
		v = newEnv()
	}
	if v.IsSet("debug") {
		cfg.Debug = v.GetBool("debug")
	}
	if v.IsSet("trigger") {
		cfg.Trigger = v.GetString("trigger")
	}
	if v.IsSet("allow_duplicates") {
		cfg.AllowDuplicates = v.GetBool("allow_duplicates")
	}
	if v.IsSet("ui.show_help") {
		cfg.UISettings.ShowHelp = v.GetBool("ui.show_help")
	}
	if v.IsSet("ui.event_log_limit") {
		cfg.UISettings.EventLogLimit = v.GetInt("ui.event_log_limit")
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		Trigger:         domain.TriggerInput.String(),
		AllowDuplicates: false,
		Keymap: KeymapConfig{
			Prev:       []string{"left"},
			Next:       []string{"right"},
			Remove:     []string{"delete", "backspace"},
			RemoveLast: []string{"backspace"},
		},
		UISettings: UISettings{
			ShowHelp:       true,
			EventLogLimit:  500,
			AutosaveOnExit: false,
		},
		Items: []string{
			"Apple", "Apricot", "Banana", "Blackberry", "Blueberry",
			"Cherry", "Grape", "Kiwi", "Lemon", "Mango",
			"Orange", "Peach", "Pear", "Plum", "Raspberry", "Strawberry",
		},
	}
}

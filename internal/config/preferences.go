package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/passforge/passforge-go/internal/crypto"
)

// Preferences are the CLI's defaults. They are read from
// $XDG_CONFIG_HOME/passforge/config.yaml and PASSFORGE_* variables; the CLI
// never writes them back.
type Preferences struct {
	Length     int      `mapstructure:"length"`
	Categories []string `mapstructure:"categories"`
	MinLength  int      `mapstructure:"min_length"`
	MaxLength  int      `mapstructure:"max_length"`
	Color      bool     `mapstructure:"color"`
	JWTSecret  string   `mapstructure:"jwt_secret"`
}

// NewViper returns a viper instance with the preference defaults, env
// binding and search paths set. path, when non-empty, names an explicit file.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault("length", crypto.DefaultLength)
	v.SetDefault("categories", crypto.AllCategories.Names())
	v.SetDefault("min_length", crypto.MinLength)
	v.SetDefault("max_length", crypto.MaxLength)
	v.SetDefault("color", true)
	v.SetDefault("jwt_secret", devJWTSecret)

	v.SetEnvPrefix("passforge")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		return v
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "passforge"))
	}
	v.AddConfigPath(".")
	return v
}

// LoadPreferences reads the config file, if any, and decodes preferences.
// A missing file is not an error.
func LoadPreferences(v *viper.Viper) (Preferences, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Preferences{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var p Preferences
	if err := v.Unmarshal(&p); err != nil {
		return Preferences{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := ValidateBounds(p.Bounds()); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// Bounds returns the accepted length range.
func (p Preferences) Bounds() crypto.Bounds {
	return crypto.Bounds{Min: p.MinLength, Max: p.MaxLength}
}

// Request returns the default generation request.
func (p Preferences) Request() (crypto.Request, error) {
	cats, err := crypto.ParseCategorySet(p.Categories)
	if err != nil {
		return crypto.Request{}, err
	}
	return crypto.Request{Categories: cats, Length: p.Length}, nil
}

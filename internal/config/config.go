// Package config loads the mapserver's runtime configuration: the
// HTTP listen port, CORS origin, debug flag, and the default
// machine-description path, the way the teacher's own app.go expects a
// *config.Config wrapping a bound *viper.Viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config wraps a populated viper.Viper behind typed accessors, plus a
// generic GetBool/GetString/GetInt escape hatch for call sites (like
// the app server) that only need one ad-hoc key.
type Config struct {
	v *viper.Viper
}

// Load builds a Config from, in priority order: NAQMAP_-prefixed
// environment variables, then a config file at path (if non-empty and
// present), falling back to the defaults set below.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("port", 8080)
	v.SetDefault("localOnly", false)
	v.SetDefault("corsAllowOrigin", "")
	v.SetDefault("geometryPath", "")
	v.SetDefault("patchRows", 1)
	v.SetDefault("patchCols", 1)

	v.SetEnvPrefix("NAQMAP")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		}
	}

	return &Config{v: v}, nil
}

func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }

func (c *Config) Debug() bool           { return c.v.GetBool("debug") }
func (c *Config) Port() int             { return c.v.GetInt("port") }
func (c *Config) LocalOnly() bool       { return c.v.GetBool("localOnly") }
func (c *Config) CORSAllowOrigin() string { return c.v.GetString("corsAllowOrigin") }
func (c *Config) GeometryPath() string  { return c.v.GetString("geometryPath") }
func (c *Config) PatchRows() int        { return c.v.GetInt("patchRows") }
func (c *Config) PatchCols() int        { return c.v.GetInt("patchCols") }

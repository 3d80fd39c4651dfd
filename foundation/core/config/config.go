// File: config.go
// Title: Configuration Loading and Access
// Description: Implements the Config type with TOML/YAML parsing, format
//              detection by file extension, default merging, dot-notation
//              value access, and environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
	"github.com/msto63/wortschatz/foundation/utils/stringx"
)

// Format identifies the configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	// FormatTOML parses the content as TOML.
	FormatTOML
	// FormatYAML parses the content as YAML.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// LoadOptions controls how a configuration file is loaded.
type LoadOptions struct {
	// Format forces a specific file format. FormatAuto detects it
	// from the file extension.
	Format Format

	// EnvPrefix enables environment variable overrides. A key
	// "general.data_dir" is overridden by <PREFIX>_GENERAL_DATA_DIR
	// when that variable is set. Empty disables overrides.
	EnvPrefix string

	// Defaults supplies values used when a key is absent from the
	// file. Nested maps use the same dot-notation structure.
	Defaults map[string]interface{}
}

// Config holds parsed configuration data.
type Config struct {
	values    map[string]interface{}
	envPrefix string
	source    string
}

// Load reads a configuration file with format auto-detection and no
// environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions reads and parses a configuration file.
func LoadWithOptions(path string, opts LoadOptions) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, wserror.New("configuration path is empty").
			WithCode(wserror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wserror.Wrap(err, fmt.Sprintf("configuration file not found: %s", path)).
				WithCode(wserror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, wserror.Wrap(err, fmt.Sprintf("cannot read configuration file: %s", path)).
			WithCode(wserror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	format := opts.Format
	if format == FormatAuto {
		format, err = detectFormat(path)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := parse(string(content), format, path)
	if err != nil {
		return nil, err
	}
	cfg.envPrefix = opts.EnvPrefix
	if opts.Defaults != nil {
		mergeDefaults(cfg.values, opts.Defaults)
	}
	return cfg, nil
}

// LoadFromString parses configuration data held in memory. The format
// must be explicit since there is no file extension to inspect.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		return nil, wserror.New("format must be explicit when loading from string").
			WithCode(wserror.CodeInvalidConfig).
			WithOperation("config.LoadFromString")
	}
	return parse(content, format, "<string>")
}

// detectFormat maps a file extension to a Format.
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, wserror.Newf("unsupported configuration file extension: %s", filepath.Ext(path)).
			WithCode(wserror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
}

// parse unmarshals content into a Config using the given format.
func parse(content string, format Format, source string) (*Config, error) {
	values := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), &values); err != nil {
			return nil, wserror.Wrap(err, "invalid TOML configuration").
				WithCode(wserror.CodeInvalidConfig).
				WithOperation("config.parse").
				WithDetail("source", source)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &values); err != nil {
			return nil, wserror.Wrap(err, "invalid YAML configuration").
				WithCode(wserror.CodeInvalidConfig).
				WithOperation("config.parse").
				WithDetail("source", source)
		}
	default:
		return nil, wserror.Newf("unsupported configuration format: %s", format).
			WithCode(wserror.CodeInvalidConfig).
			WithOperation("config.parse")
	}

	return &Config{values: values, source: source}, nil
}

// mergeDefaults copies default entries into dst for keys dst does not
// already have. Nested maps are merged recursively.
func mergeDefaults(dst, defaults map[string]interface{}) {
	for key, defVal := range defaults {
		existing, ok := dst[key]
		if !ok {
			dst[key] = defVal
			continue
		}
		dstMap, dstOK := existing.(map[string]interface{})
		defMap, defOK := defVal.(map[string]interface{})
		if dstOK && defOK {
			mergeDefaults(dstMap, defMap)
		}
	}
}

// Source returns the path the configuration was loaded from.
func (c *Config) Source() string {
	return c.source
}

// Has reports whether a key is present, either in the file or as an
// environment override.
func (c *Config) Has(key string) bool {
	if _, ok := c.envValue(key); ok {
		return true
	}
	_, ok := c.value(key)
	return ok
}

// GetString returns the string value for key, or def when absent.
func (c *Config) GetString(key, def string) string {
	if env, ok := c.envValue(key); ok {
		return env
	}
	raw, ok := c.value(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the integer value for key, or def when absent or not
// convertible.
func (c *Config) GetInt(key string, def int) int {
	if env, ok := c.envValue(key); ok {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
		return def
	}
	raw, ok := c.value(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// GetBool returns the boolean value for key, or def when absent or not
// convertible.
func (c *Config) GetBool(key string, def bool) bool {
	if env, ok := c.envValue(key); ok {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
		return def
	}
	raw, ok := c.value(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// GetStringSlice returns the string slice value for key, or def when
// absent. Non-string elements are formatted.
func (c *Config) GetStringSlice(key string, def []string) []string {
	raw, ok := c.value(key)
	if !ok {
		return def
	}
	list, ok := raw.([]interface{})
	if !ok {
		return def
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		default:
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out
}

// value resolves a dot-notation key against the nested value maps.
func (c *Config) value(key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	current := interface{}(c.values)
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// envValue checks for an environment override of key.
func (c *Config) envValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	name := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(name)
}

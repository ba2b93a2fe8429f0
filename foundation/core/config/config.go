// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML and YAML files,
//              dotted-key access with environment overrides and decoding of
//              sub-trees into structs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Decode via mapstructure, dropped watching and caches

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/mapx"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, overridden by file content
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", filePath).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without any keys. Environment overrides
// still apply when envPrefix is set.
func Empty(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if len(defaults) == 0 {
		return data
	}

	return mapx.Merge(defaults, data)
}

// Get returns the raw value stored under a dotted key, or nil
func (c *Config) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.lookupEnv(key); ok {
		return envValue
	}
	return c.getValue(key)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.lookupEnv(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		return first(defaultValue)
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.lookupEnv(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Keys returns the sorted child keys of the table stored under key. An empty
// key lists the top-level keys.
func (c *Config) Keys(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table := c.data
	if key != "" {
		sub, ok := c.getValue(key).(map[string]interface{})
		if !ok {
			return nil
		}
		table = sub
	}

	return mapx.SortedKeys(table)
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := stringx.SplitByte(key, '.')
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// Decode decodes the sub-tree stored under key into out, which must be a
// pointer. Field names are matched through `mapstructure` tags and input is
// weakly typed, so "3" decodes into an int field. Extra hooks run after the
// built-in string to time.Duration conversion.
func (c *Config) Decode(key string, out interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	c.mu.RLock()
	var input interface{} = c.data
	if key != "" {
		input = c.getValue(key)
	}
	c.mu.RUnlock()

	if input == nil {
		return mdwerror.Newf("config key not found: %s", key).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Decode").
			WithDetail("key", key)
	}

	hooks = append([]mapstructure.DecodeHookFunc{mapstructure.StringToTimeDurationHookFunc()}, hooks...)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return mdwerror.Wrap(err, "failed to create decoder").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.Decode")
	}

	if err := decoder.Decode(input); err != nil {
		return mdwerror.Wrap(err, "failed to decode config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("key", key)
	}
	return nil
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}

// getValue retrieves a configuration value by dotted key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := stringx.SplitByte(key, '.')

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// lookupEnv reads the environment override for key. Without a prefix no
// overrides are consulted.
func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(EnvKey(c.envPrefix, key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey converts a dotted config key to its environment variable name:
// log.level with prefix easyfmt becomes EASYFMT_LOG_LEVEL.
func EnvKey(prefix, key string) string {
	envKey := stringx.ToUpper(stringx.Replace(key, ".", "_"))
	if prefix != "" {
		envKey = stringx.ToUpper(prefix) + "_" + envKey
	}
	return envKey
}

func first[T any](values []T) T {
	if len(values) > 0 {
		return values[0]
	}
	var zero T
	return zero
}

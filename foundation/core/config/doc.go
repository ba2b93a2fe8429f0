// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration for easyfmt.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Struct decoding, discovery of easyfmt.{toml,yaml}

/*
Package config loads configuration for easyfmt.

Key Features:
  - TOML and YAML files, format detected from the file extension
  - Dotted-key access: GetString("log.level"), Has, Keys
  - Environment overrides: with prefix EASYFMT the key log.level is read from
    EASYFMT_LOG_LEVEL before the file value
  - Decode of any sub-tree into a struct through mapstructure tags
  - Discovery of easyfmt.toml / easyfmt.yaml in the working directory and the
    user config directory
  - Failures are coded foundation errors (NOT_FOUND, INVALID_INPUT,
    CONFIG_ERROR, INVALID_CONFIG)

Usage:

	cfg, err := config.LoadWithOptions("easyfmt.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "EASYFMT",
	})
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")

	var def struct {
		Description string   `mapstructure:"description"`
		Steps       []string `mapstructure:"steps"`
	}
	if err := cfg.Decode("pipelines.slug", &def); err != nil {
		return err
	}

Example file:

	[log]
	level = "debug"
	format = "text"

	[pipelines.slug]
	description = "URL slug from a title"
	steps = [
	  { op = "trim" },
	  { op = "lower" },
	  { op = "kebab" },
	]
*/
package config

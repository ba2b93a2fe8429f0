// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file matching one of the configured base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-03-02 v0.2.0: Optional discovery returns an empty config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search used by the easyfmt CLI: the
// working directory, then the user config directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "easyfmt"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"easyfmt"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "EASYFMT",
	}
}

// Discover loads the first configuration file found. When none exists and
// discovery is optional, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if filex.IsFile(candidate) {
			return candidate, nil
		}
	}

	return "", mdwerror.Newf("no configuration file found in: %s", strings.Join(candidates, ", ")).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic discovery of the PUT tool configuration
//              file (put.toml or put.yaml) across the standard search paths.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	puterror "github.com/msto63/put/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default search options for the PUT tool.
// Searches put.toml and put.yaml in the working directory, ./configs, and
// the per-user configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "put"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"put"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
		Required:   false,
	}
}

// Discover automatically discovers and loads a configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"put"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)

				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					config, err := LoadWithOptions(configPath, LoadOptions{
						Format:    FormatAuto,
						EnvPrefix: options.EnvPrefix,
					})
					if err != nil {
						// File exists but could not be loaded
						return nil, puterror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
							WithCode(puterror.CodeInvalidConfig).
							WithOperation("config.Discover").
							WithDetail("configPath", configPath)
					}

					return config, nil
				}
			}
		}
	}

	if options.Required {
		var searchPaths []string
		for _, path := range options.Paths {
			for _, filename := range options.Filenames {
				for _, ext := range options.Extensions {
					searchPaths = append(searchPaths, filepath.Join(path, filename+ext))
				}
			}
		}

		return nil, puterror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(puterror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	// Fall back to an empty configuration, env overrides still apply
	cfg := New()
	cfg.envPrefix = options.EnvPrefix
	return cfg, nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)

				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
			}
		}
	}

	return "", puterror.New("configuration file not found").
		WithCode(puterror.CodeMissingConfig).
		WithOperation("config.FindConfigFile")
}

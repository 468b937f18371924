// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides configuration loading for the PUT
//              toolchain with TOML/YAML support and environment overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package config provides configuration loading for the PUT toolchain.
//
// Configuration is read from put.toml or put.yaml, discovered in the
// working directory, ./configs, or ~/.config/put. Environment variables
// with the PUT_ prefix override file values: the key "log.level" maps to
// PUT_LOG_LEVEL. Values are accessed with dot notation:
//
//	cfg, err := config.DiscoverWithDefaults()
//	if err != nil {
//	    return err
//	}
//	level := cfg.GetString("log.level", "info")
//	maxLen := cfg.GetInt("parser.max_input_length", 0)
package config

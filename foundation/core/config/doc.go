// Package config provides configuration management for the WortSchatz tools.
//
// Package: config
// Title: WortSchatz Configuration Management
// Description: This package implements loading, parsing, and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides. Values are addressed with dot notation
//              (e.g. "general.data_dir") and fall back to caller-supplied
//              defaults when absent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/wortschatz/foundation/core/config"
//
//   cfg, err := config.LoadWithOptions("wortschatz.toml", config.LoadOptions{
//     EnvPrefix: "WORTSCHATZ",
//   })
//   if err != nil { ... }
//
//   root := cfg.GetString("general.data_dir", ".")
//   level := cfg.GetString("general.log_level", "info")
package config

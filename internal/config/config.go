// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// ArtifactsConfig locates the three fitted artifacts produced by the offline
// training process. Relative paths are resolved against Dir when it is set.
//
// Environment Variables:
//   - ARTIFACTS_DIR: Base directory (default: "")
//   - MODEL_PATH: Classifier artifact (default: pretrained_model.json)
//   - LABEL_ENCODER_PATH: Label encoder artifact (default: label_encoder.json)
//   - SCALER_PATH: Scaler artifact (default: scaler.json)
type ArtifactsConfig struct {
	Dir              string `koanf:"dir"`
	ModelPath        string `koanf:"model_path"`
	LabelEncoderPath string `koanf:"label_encoder_path"`
	ScalerPath       string `koanf:"scaler_path"`
}

// SecurityConfig holds cross-origin settings. The endpoint is unauthenticated;
// CORS is the only browser-facing control.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Resolve returns path joined to Dir when path is relative and Dir is set.
func (a ArtifactsConfig) Resolve(path string) string {
	if a.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.Dir, path)
}

// ModelFile returns the resolved classifier artifact path.
func (a ArtifactsConfig) ModelFile() string { return a.Resolve(a.ModelPath) }

// LabelEncoderFile returns the resolved label encoder artifact path.
func (a ArtifactsConfig) LabelEncoderFile() string { return a.Resolve(a.LabelEncoderPath) }

// ScalerFile returns the resolved scaler artifact path.
func (a ArtifactsConfig) ScalerFile() string { return a.Resolve(a.ScalerPath) }

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Load reads configuration using Koanf with layered sources.
// Precedence: environment variables > config file > defaults.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

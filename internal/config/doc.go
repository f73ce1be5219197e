// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package config provides centralized configuration management for Engagerec.

Configuration is loaded with Koanf v2 from layered sources (highest priority wins):
  - Environment variables
  - Optional YAML config file (CONFIG_PATH, ./config.yaml, /etc/engagerec/config.yaml)
  - Built-in defaults

# Environment Variables

HTTP Server (ServerConfig):
  - PORT: Listen port (default: 5001)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)
  - ENVIRONMENT: development, staging, production (default: development)

Model Artifacts (ArtifactsConfig):
  - ARTIFACTS_DIR: Base directory for relative artifact paths (default: working directory)
  - MODEL_PATH: Fitted classifier (default: pretrained_model.json)
  - LABEL_ENCODER_PATH: Fitted label encoder (default: label_encoder.json)
  - SCALER_PATH: Fitted scaler (default: scaler.json)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	server:
	  port: 5001
	  timeout: 30s
	artifacts:
	  dir: /models
	security:
	  cors_origins:
	    - https://app.example.com
	logging:
	  level: debug
	  format: console

# Thread Safety

Config is immutable after Load() and safe for concurrent read access.
*/
package config

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package main is the entry point for the Engagerec server.

Engagerec loads a fitted feature scaler, classifier and label encoder at
startup and serves POST /recommend, which maps four engagement metrics
(likes, comments, shares, watch_time) to a content category.

# Application Architecture

	RootSupervisor ("engagerec")
	├── TelemetrySupervisor ("telemetry-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Startup order:

 1. Configuration: koanf v2 (env > YAML file > defaults), then Validate
 2. Logging: zerolog with JSON/console output
 3. Artifacts: scaler.json, pretrained_model.json, label_encoder.json
 4. Supervisor tree and HTTP server

A missing or inconsistent artifact is fatal: the process logs which file
failed and exits with status 1 before listening.

# Configuration

	PORT=5001                          # HTTP port
	HTTP_HOST=0.0.0.0                  # bind address
	ARTIFACTS_DIR=/models              # base dir for relative artifact paths
	MODEL_PATH=pretrained_model.json
	SCALER_PATH=scaler.json
	LABEL_ENCODER_PATH=label_encoder.json
	CORS_ORIGINS=*                     # comma-separated
	LOG_LEVEL=info                     # trace, debug, info, warn, error
	LOG_FORMAT=json                    # json or console
	CONFIG_PATH=/etc/engagerec.yaml    # optional YAML file

Artifacts ending in .gz are decompressed transparently.

# Example

	curl -s -X POST localhost:5001/recommend \
	  -H 'Content-Type: application/json' \
	  -d '{"likes": 120, "comments": 14, "shares": 3, "watch_time": 340.5}'
	{"status":"success","recommended_category":"music"}

Swagger documentation is available at /swagger/index.html and Prometheus
metrics at /metrics.

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server then
drains in-flight requests for up to SHUTDOWN_TIMEOUT.
*/
package main

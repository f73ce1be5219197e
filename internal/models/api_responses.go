// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecommendRequest is the POST /recommend body. Every field is optional and
// defaults to 0; values must be non-negative. Numeric strings such as "12.5"
// are accepted.
type RecommendRequest struct {
	Likes     float64 `json:"likes" example:"120"`
	Comments  float64 `json:"comments" example:"14"`
	Shares    float64 `json:"shares" example:"3"`
	WatchTime float64 `json:"watch_time" example:"340.5"`
}

// RecommendResponse is returned when inference succeeds.
//
// Example:
//
//	{"status": "success", "recommended_category": "music"}
type RecommendResponse struct {
	Status              string `json:"status" example:"success"`
	RecommendedCategory string `json:"recommended_category" example:"music"`
}

// ErrorResponse is returned for every failed request.
//
// Messages by case:
//   - "no data provided": body empty, not JSON, null or not an object
//   - "data format error: <details>": a field is not numeric
//   - "<field> must be positive": a field is negative
//   - "server error: <details>": inference failed
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"likes must be positive"`
}

// HealthLiveResponse reports process liveness.
type HealthLiveResponse struct {
	Status        string  `json:"status" example:"success"`
	Alive         bool    `json:"alive" example:"true"`
	UptimeSeconds float64 `json:"uptime_seconds" example:"3600.5"`
}

// HealthReadyResponse reports whether the pipeline can serve requests.
type HealthReadyResponse struct {
	Status         string `json:"status" example:"success"`
	Ready          bool   `json:"ready" example:"true"`
	ScalerKind     string `json:"scaler_kind,omitempty" example:"standard"`
	ClassifierKind string `json:"classifier_kind,omitempty" example:"forest"`
	Message        string `json:"message,omitempty"`
}

// ArtifactSummary describes one loaded artifact file.
type ArtifactSummary struct {
	Name      string `json:"name" example:"model"`
	Path      string `json:"path" example:"pretrained_model.json"`
	Kind      string `json:"kind,omitempty" example:"forest"`
	SHA256    string `json:"sha256" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	SizeBytes int64  `json:"size_bytes" example:"48213"`
}

// ModelInfo describes the loaded pipeline.
type ModelInfo struct {
	FeatureOrder   []string          `json:"feature_order"`
	ScalerKind     string            `json:"scaler_kind" example:"standard"`
	ClassifierKind string            `json:"classifier_kind" example:"forest"`
	Categories     []string          `json:"categories"`
	Artifacts      []ArtifactSummary `json:"artifacts"`
	LoadedAt       time.Time         `json:"loaded_at"`
}

// ModelInfoResponse is returned by GET /model.
type ModelInfoResponse struct {
	Status string    `json:"status" example:"success"`
	Model  ModelInfo `json:"model"`
}

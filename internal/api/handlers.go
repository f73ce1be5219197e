// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package api

import (
	"time"

	"github.com/tomtom215/engagerec/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON response helpers
//   - handlers_health.go: liveness, readiness and model info
//   - handlers_recommend.go: POST /recommend
type Handler struct {
	pipeline  *recommend.Pipeline
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// pipeline may be nil; /health/ready then reports 503 and /recommend
// answers 500.
//
// Example:
//
//	pipeline, err := storage.LoadPipeline(ctx, paths)
//	handler := api.NewHandler(pipeline)
//	router := api.NewRouter(handler, nil)
func NewHandler(pipeline *recommend.Pipeline) *Handler {
	return &Handler{
		pipeline:  pipeline,
		startTime: time.Now(),
	}
}

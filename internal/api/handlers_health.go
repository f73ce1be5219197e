// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/engagerec/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK as long as the process can serve HTTP
//
// @Summary Liveness probe
// @Description Returns 200 OK with process uptime
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthLiveResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthLiveResponse{
		Status:        models.StatusSuccess,
		Alive:         true,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the inference pipeline is loaded
//
// @Summary Readiness probe
// @Description Returns 200 OK when the scaler, classifier and label encoder are loaded. Returns 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthReadyResponse "Service is ready"
// @Failure 503 {object} models.HealthReadyResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if h.pipeline == nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.HealthReadyResponse{
			Status:  models.StatusError,
			Ready:   false,
			Message: "pipeline not loaded",
		})
		return
	}

	meta := h.pipeline.Metadata()
	respondJSON(w, http.StatusOK, &models.HealthReadyResponse{
		Status:         models.StatusSuccess,
		Ready:          true,
		ScalerKind:     meta.ScalerKind,
		ClassifierKind: meta.ClassifierKind,
	})
}

// ModelInfo handles GET /model
//
// @Summary Loaded model metadata
// @Description Returns the feature order, scaler and classifier kinds, category list, and each artifact's path, size and SHA-256
// @Tags Recommendation
// @Produce json
// @Success 200 {object} models.ModelInfoResponse "Model metadata"
// @Failure 503 {object} models.ErrorResponse "Pipeline not loaded"
// @Router /model [get]
func (h *Handler) ModelInfo(w http.ResponseWriter, _ *http.Request) {
	if h.pipeline == nil {
		respondError(w, http.StatusServiceUnavailable, "pipeline not loaded")
		return
	}

	meta := h.pipeline.Metadata()
	artifacts := make([]models.ArtifactSummary, 0, len(meta.Artifacts))
	for _, a := range meta.Artifacts {
		artifacts = append(artifacts, models.ArtifactSummary{
			Name:      a.Name,
			Path:      a.Path,
			Kind:      a.Kind,
			SHA256:    a.Checksum,
			SizeBytes: a.SizeBytes,
		})
	}

	respondJSON(w, http.StatusOK, &models.ModelInfoResponse{
		Status: models.StatusSuccess,
		Model: models.ModelInfo{
			FeatureOrder:   meta.FeatureOrder,
			ScalerKind:     meta.ScalerKind,
			ClassifierKind: meta.ClassifierKind,
			Categories:     meta.Categories,
			Artifacts:      artifacts,
			LoadedAt:       meta.LoadedAt,
		},
	})
}

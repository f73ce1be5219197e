// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/tomtom215/engagerec/internal/logging"
	"github.com/tomtom215/engagerec/internal/metrics"
	"github.com/tomtom215/engagerec/internal/models"
	"github.com/tomtom215/engagerec/internal/recommend"
)

// maxRequestBodyBytes caps the POST /recommend body.
const maxRequestBodyBytes = 1 << 20

// Recommend handles POST /recommend
//
// @Summary Recommend a content category
// @Description Scales the four engagement features, runs the classifier and returns the decoded category. Missing fields default to 0. Numeric strings and booleans are coerced to numbers.
// @Tags Recommendation
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Engagement sample"
// @Success 200 {object} models.RecommendResponse "Recommended category"
// @Failure 400 {object} models.ErrorResponse "No data, format error or negative value"
// @Failure 413 {object} models.ErrorResponse "Request body too large"
// @Failure 500 {object} models.ErrorResponse "Inference failed"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.RecordRecommendationError("too_large")
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.recommendError(w, r, recommend.ErrNoData)
		return
	}

	sample, err := recommend.ParseSample(body)
	if err != nil {
		h.recommendError(w, r, err)
		return
	}

	result, err := h.pipeline.Recommend(r.Context(), sample)
	if err != nil {
		h.recommendError(w, r, err)
		return
	}

	metrics.RecordRecommendation(result.Category, result.Duration)
	respondJSON(w, http.StatusOK, &models.RecommendResponse{
		Status:              models.StatusSuccess,
		RecommendedCategory: result.Category,
	})
}

// recommendError maps a ParseSample or Pipeline error to a status and message.
func (h *Handler) recommendError(w http.ResponseWriter, r *http.Request, err error) {
	kind := recommend.ErrorKind(err)
	metrics.RecordRecommendationError(kind)

	status, message := recommendErrorResponse(err)
	logger := logging.Ctx(r.Context())
	if recommend.IsClientError(err) {
		logger.Debug().Str("kind", kind).Str("error", sanitizeLogValue(err.Error())).Msg("Rejected recommendation request")
	} else {
		logger.Error().Err(err).Str("kind", kind).Msg("Recommendation failed")
	}

	respondError(w, status, message)
}

func recommendErrorResponse(err error) (int, string) {
	var formatErr *recommend.FormatError
	var negErr *recommend.NegativeValueError

	switch {
	case errors.Is(err, recommend.ErrNoData):
		return http.StatusBadRequest, recommend.ErrNoData.Error()
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, "data format error: " + formatErr.Error()
	case errors.As(err, &negErr):
		return http.StatusBadRequest, negErr.Error()
	default:
		return http.StatusInternalServerError, "server error: " + err.Error()
	}
}

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package recommend

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when the request body is empty, not JSON, null or not a JSON object.
var ErrNoData = errors.New("no data provided")

// ErrNotReady is returned when inference is attempted without a loaded pipeline.
var ErrNotReady = errors.New("pipeline not loaded")

// errNonFinite marks NaN, infinities and values that overflow float64.
var errNonFinite = errors.New("value is not a finite number")

// FormatError reports a field whose value could not be coerced to a float.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: could not convert %s to float", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: could not convert %s to float: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NegativeValueError reports a coerced field below zero.
type NegativeValueError struct {
	Field string
	Value float64
}

func (e *NegativeValueError) Error() string {
	return e.Field + " must be positive"
}

// Inference stages reported by InferenceError.
const (
	StageTransform = "transform"
	StagePredict   = "predict"
	StageDecode    = "decode"
	StagePanic     = "panic"
)

// InferenceError wraps a failure inside the scaler, classifier or encoder.
type InferenceError struct {
	Stage string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// ErrorKind classifies err for metrics and logs: "no_data", "format",
// "negative", "not_ready", "inference" or "unknown".
func ErrorKind(err error) string {
	var formatErr *FormatError
	var negErr *NegativeValueError
	var infErr *InferenceError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoData):
		return "no_data"
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &negErr):
		return "negative"
	case errors.Is(err, ErrNotReady):
		return "not_ready"
	case errors.As(err, &infErr):
		return "inference"
	default:
		return "unknown"
	}
}

// IsClientError reports whether err was caused by the request body.
func IsClientError(err error) bool {
	switch ErrorKind(err) {
	case "no_data", "format", "negative":
		return true
	default:
		return false
	}
}

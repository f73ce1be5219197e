// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package validation provides struct validation using go-playground/validator v10.
//
// The package exposes a thread-safe singleton validator with the custom rules
// the recommendation endpoint needs, and translates validator failures into
// the short messages returned to API clients.
//
// # Field Names
//
// Field names in errors come from the struct's json tag, so a failure on
//
//	WatchTime float64 `json:"watch_time" validate:"nonnegative"`
//
// is reported as "watch_time must be positive". Fields without a json tag
// fall back to the Go field name.
//
// # Custom Validators
//
//   - nonnegative: numeric field must be >= 0 (NaN fails)
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	type ValidationError struct {
//	    Field()   string      // JSON field name
//	    Tag()     string      // Validation tag that failed
//	    Param()   string      // Tag parameter (e.g., "100" for max=100)
//	    Value()   interface{} // Actual value that failed
//	    Error()   string      // Human-readable message
//	}
//
// RequestValidationError aggregates field errors in struct declaration order.
// First() returns the earliest failing field, which is what the API reports.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/recommend: EngagementSample validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation

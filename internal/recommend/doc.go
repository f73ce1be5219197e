// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package recommend implements content category inference from engagement metrics.
//
// # Architecture
//
// A request flows through a fixed, linear chain:
//
//	JSON body -> ParseSample -> Vector (FeatureOrder)
//	  -> Scaler.Transform -> Classifier.Predict -> LabelEncoder.Decode
//
// The three fitted artifacts sit behind the Scaler, Classifier and
// LabelEncoder interfaces. Concrete implementations live in the scaler,
// classifier and encoder subpackages; the storage subpackage loads them
// from disk and builds a Pipeline.
//
// # Feature Order
//
// FeatureOrder is the single declaration of the column order the artifacts
// were fitted with. Changing it without refitting the artifacts silently
// produces wrong predictions, so the loader rejects any scaler whose
// recorded feature names differ.
//
// # Errors
//
// ParseSample returns one of three client errors:
//
//   - ErrNoData: body empty, not JSON, null, or not an object
//   - *FormatError: a field could not be coerced to a finite float
//   - *NegativeValueError: a coerced field is below zero
//
// Pipeline.Recommend returns *InferenceError for any failure inside the
// chain, including recovered panics.
//
// # Usage
//
//	pipeline, err := storage.LoadPipeline(ctx, storage.Paths{...})
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load artifacts")
//	}
//
//	sample, err := recommend.ParseSample(body)
//	if err != nil {
//	    // map to HTTP 400
//	}
//	result, err := pipeline.Recommend(ctx, sample)
//
// # Thread Safety
//
// A Pipeline is immutable after construction and safe for concurrent use
// without locking. ParseSample is a pure function.
package recommend

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package scaler implements fitted feature scalers.
//
// Each scaler reproduces the transform of the matching scikit-learn
// preprocessing class from parameters exported by the training process:
//
//   - Standard (StandardScaler):  (x - mean) / scale
//   - MinMax   (MinMaxScaler):    x*scale + min, optionally clipped
//   - Robust   (RobustScaler):    (x - center) / scale
//
// A zero scale is treated as 1, matching scikit-learn's handling of
// constant features.
//
// # Artifact Format
//
//	{"kind": "standard", "feature_names": ["likes","comments","shares","watch_time"],
//	 "mean": [...], "scale": [...], "with_mean": true, "with_std": true}
//
// FromArtifact validates arity and feature names against recommend.FeatureOrder.
//
// # Thread Safety
//
// Scalers are immutable after construction and safe for concurrent use.
package scaler

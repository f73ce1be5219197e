// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package storage loads the fitted artifacts and assembles a recommend.Pipeline.
//
// # Overview
//
// Three JSON artifacts are read once at startup:
//
//	scaler.json            -> scaler.Artifact
//	pretrained_model.json  -> classifier.Artifact
//	label_encoder.json     -> encoder.Artifact
//
// Files ending in .gz are gzip-decompressed before decoding. The SHA-256
// checksum and size of each file as stored on disk are recorded in the
// pipeline metadata and logged, so operators can confirm which model build
// is serving.
//
// # Validation
//
// LoadPipeline refuses to return a pipeline unless:
//   - every file exists, decodes and names a known kind
//   - per-feature arrays have recommend.NumFeatures entries
//   - recorded feature names match recommend.FeatureOrder
//   - tree structures are well formed
//   - every classifier class is a valid label encoder index
//
// Errors carry the artifact name and path. A missing file reads
// "artifact <name> not found at <path>".
//
// # Usage
//
//	pipeline, err := storage.LoadPipeline(ctx, storage.Paths{
//	    Scaler:       cfg.Artifacts.ScalerFile(),
//	    Model:        cfg.Artifacts.ModelFile(),
//	    LabelEncoder: cfg.Artifacts.LabelEncoderFile(),
//	})
package storage

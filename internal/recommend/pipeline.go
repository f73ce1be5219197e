// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/engagerec/internal/logging"
)

// ArtifactInfo describes one artifact file the pipeline was built from.
type ArtifactInfo struct {
	// Name is the artifact role: "scaler", "model" or "label_encoder".
	Name string `json:"name"`

	// Path is the resolved file path.
	Path string `json:"path"`

	// Kind is the artifact family (e.g., "standard", "forest").
	Kind string `json:"kind,omitempty"`

	// Checksum is the SHA-256 of the file contents.
	Checksum string `json:"checksum"`

	// SizeBytes is the file size.
	SizeBytes int64 `json:"size_bytes"`
}

// Metadata describes a loaded pipeline.
type Metadata struct {
	FeatureOrder   []string       `json:"feature_order"`
	ScalerKind     string         `json:"scaler_kind"`
	ClassifierKind string         `json:"classifier_kind"`
	Categories     []string       `json:"categories"`
	Artifacts      []ArtifactInfo `json:"artifacts"`
	LoadedAt       time.Time      `json:"loaded_at"`
}

// Result is the outcome of one inference.
type Result struct {
	// Category is the decoded category name.
	Category string

	// Class is the encoded class the classifier returned.
	Class int

	// Duration is the time spent in transform, predict and decode.
	Duration time.Duration
}

// Pipeline holds the fitted scaler, classifier and label encoder.
// It has no setters; build a new Pipeline to change artifacts.
type Pipeline struct {
	scaler     Scaler
	classifier Classifier
	encoder    LabelEncoder
	meta       Metadata
}

// NewPipeline validates that the three artifacts agree and returns an
// immutable pipeline. Every class the classifier can emit must be a valid
// label encoder index.
func NewPipeline(scaler Scaler, classifier Classifier, encoder LabelEncoder, artifacts ...ArtifactInfo) (*Pipeline, error) {
	if scaler == nil {
		return nil, fmt.Errorf("scaler is required")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if encoder == nil {
		return nil, fmt.Errorf("label encoder is required")
	}

	categories := encoder.Classes()
	if len(categories) == 0 {
		return nil, fmt.Errorf("label encoder has no classes")
	}
	for _, class := range classifier.Classes() {
		if class < 0 || class >= len(categories) {
			return nil, fmt.Errorf("classifier class %d is outside label encoder range [0, %d)", class, len(categories))
		}
	}

	infos := make([]ArtifactInfo, len(artifacts))
	copy(infos, artifacts)

	return &Pipeline{
		scaler:     scaler,
		classifier: classifier,
		encoder:    encoder,
		meta: Metadata{
			FeatureOrder:   FeatureNames(),
			ScalerKind:     scaler.Kind(),
			ClassifierKind: classifier.Kind(),
			Categories:     categories,
			Artifacts:      infos,
			LoadedAt:       time.Now().UTC(),
		},
	}, nil
}

// Metadata returns a copy of the pipeline metadata.
func (p *Pipeline) Metadata() Metadata {
	m := p.meta
	m.FeatureOrder = append([]string(nil), p.meta.FeatureOrder...)
	m.Categories = append([]string(nil), p.meta.Categories...)
	m.Artifacts = append([]ArtifactInfo(nil), p.meta.Artifacts...)
	return m
}

// Recommend runs the sample through scaler, classifier and label encoder.
// Any failure, including a panic inside an artifact, is returned as *InferenceError.
func (p *Pipeline) Recommend(ctx context.Context, sample EngagementSample) (result Result, err error) {
	if p == nil {
		return Result{}, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = &InferenceError{Stage: StagePanic, Err: fmt.Errorf("%v", r)}
		}
	}()

	scaled, err := p.scaler.Transform(sample.Vector())
	if err != nil {
		return Result{}, &InferenceError{Stage: StageTransform, Err: err}
	}

	class, err := p.classifier.Predict(scaled)
	if err != nil {
		return Result{}, &InferenceError{Stage: StagePredict, Err: err}
	}

	category, err := p.encoder.Decode(class)
	if err != nil {
		return Result{}, &InferenceError{Stage: StageDecode, Err: err}
	}

	result = Result{Category: category, Class: class, Duration: time.Since(start)}

	logging.Ctx(ctx).Debug().
		Floats64("features", sample.Vector()).
		Floats64("scaled", scaled).
		Int("class", class).
		Str("category", category).
		Dur("duration", result.Duration).
		Msg("Inference complete")

	return result, nil
}

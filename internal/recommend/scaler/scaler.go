// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package scaler

import (
	"fmt"
	"math"

	"github.com/tomtom215/engagerec/internal/recommend"
)

// Scaler kinds.
const (
	KindStandard = "standard"
	KindMinMax   = "minmax"
	KindRobust   = "robust"
)

// Artifact is the exported form of a fitted scaler.
type Artifact struct {
	Kind         string    `json:"kind" validate:"required,oneof=standard minmax robust"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	Mean         []float64 `json:"mean,omitempty"`
	Scale        []float64 `json:"scale,omitempty"`
	Min          []float64 `json:"min,omitempty"`
	Center       []float64 `json:"center,omitempty"`
	WithMean     *bool     `json:"with_mean,omitempty"`
	WithStd      *bool     `json:"with_std,omitempty"`
	Clip         bool      `json:"clip,omitempty"`
	FeatureRange []float64 `json:"feature_range,omitempty"`
}

// FromArtifact builds the scaler described by a.
func FromArtifact(a *Artifact) (recommend.Scaler, error) {
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, err
	}

	switch a.Kind {
	case KindStandard:
		return NewStandard(a.Mean, a.Scale, boolOr(a.WithMean, true), boolOr(a.WithStd, true))
	case KindMinMax:
		lo, hi := 0.0, 1.0
		if a.FeatureRange != nil {
			if len(a.FeatureRange) != 2 {
				return nil, fmt.Errorf("feature_range must have 2 values, got %d", len(a.FeatureRange))
			}
			lo, hi = a.FeatureRange[0], a.FeatureRange[1]
		}
		return NewMinMax(a.Scale, a.Min, a.Clip, lo, hi)
	case KindRobust:
		return NewRobust(a.Center, a.Scale)
	default:
		return nil, fmt.Errorf("unknown scaler kind %q", a.Kind)
	}
}

// checkFeatureNames rejects artifacts fitted with a different column order.
func checkFeatureNames(names []string) error {
	if names == nil {
		return nil
	}
	if len(names) != recommend.NumFeatures {
		return fmt.Errorf("feature_names has %d entries, want %d %v", len(names), recommend.NumFeatures, recommend.FeatureOrder)
	}
	for i, name := range names {
		if name != recommend.FeatureOrder[i] {
			return fmt.Errorf("feature order mismatch at position %d: artifact has %q, service expects %q",
				i, name, recommend.FeatureOrder[i])
		}
	}
	return nil
}

// checkParams verifies a per-feature parameter array.
func checkParams(name string, values []float64) error {
	if len(values) != recommend.NumFeatures {
		return fmt.Errorf("%s has %d values, want %d", name, len(values), recommend.NumFeatures)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d] is not finite", name, i)
		}
	}
	return nil
}

func checkInput(x recommend.Vector) error {
	if len(x) != recommend.NumFeatures {
		return fmt.Errorf("expected %d features, got %d", recommend.NumFeatures, len(x))
	}
	return nil
}

// safeScale replaces zero scales with 1.
func safeScale(scale []float64) []float64 {
	out := make([]float64, len(scale))
	for i, s := range scale {
		if s == 0 {
			s = 1
		}
		out[i] = s
	}
	return out
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// Standard is a fitted StandardScaler.
type Standard struct {
	mean     []float64
	scale    []float64
	withMean bool
	withStd  bool
}

// NewStandard creates a standard scaler. mean is required when withMean is
// set and scale when withStd is set.
func NewStandard(mean, scale []float64, withMean, withStd bool) (*Standard, error) {
	s := &Standard{withMean: withMean, withStd: withStd}
	if withMean {
		if err := checkParams("mean", mean); err != nil {
			return nil, err
		}
		s.mean = append([]float64(nil), mean...)
	}
	if withStd {
		if err := checkParams("scale", scale); err != nil {
			return nil, err
		}
		s.scale = safeScale(scale)
	}
	return s, nil
}

// Kind returns "standard".
func (s *Standard) Kind() string { return KindStandard }

// Transform returns (x - mean) / scale.
func (s *Standard) Transform(x recommend.Vector) (recommend.Vector, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	out := x.Clone()
	for i := range out {
		if s.withMean {
			out[i] -= s.mean[i]
		}
		if s.withStd {
			out[i] /= s.scale[i]
		}
	}
	return out, nil
}

// MinMax is a fitted MinMaxScaler.
type MinMax struct {
	scale []float64
	min   []float64
	clip  bool
	lo    float64
	hi    float64
}

// NewMinMax creates a min-max scaler from fitted scale_ and min_.
// When clip is set, output is clamped to [lo, hi].
func NewMinMax(scale, minimum []float64, clip bool, lo, hi float64) (*MinMax, error) {
	if err := checkParams("scale", scale); err != nil {
		return nil, err
	}
	if err := checkParams("min", minimum); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, fmt.Errorf("feature_range minimum %v must be below maximum %v", lo, hi)
	}
	return &MinMax{
		scale: append([]float64(nil), scale...),
		min:   append([]float64(nil), minimum...),
		clip:  clip,
		lo:    lo,
		hi:    hi,
	}, nil
}

// Kind returns "minmax".
func (m *MinMax) Kind() string { return KindMinMax }

// Transform returns x*scale + min.
func (m *MinMax) Transform(x recommend.Vector) (recommend.Vector, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	out := make(recommend.Vector, len(x))
	for i, v := range x {
		out[i] = v*m.scale[i] + m.min[i]
		if m.clip {
			out[i] = math.Min(math.Max(out[i], m.lo), m.hi)
		}
	}
	return out, nil
}

// Robust is a fitted RobustScaler. Either parameter may be omitted when the
// scaler was fitted with centering or scaling disabled.
type Robust struct {
	center []float64
	scale  []float64
}

// NewRobust creates a robust scaler. A nil center or scale disables that step.
func NewRobust(center, scale []float64) (*Robust, error) {
	r := &Robust{}
	if center != nil {
		if err := checkParams("center", center); err != nil {
			return nil, err
		}
		r.center = append([]float64(nil), center...)
	}
	if scale != nil {
		if err := checkParams("scale", scale); err != nil {
			return nil, err
		}
		r.scale = safeScale(scale)
	}
	if r.center == nil && r.scale == nil {
		return nil, fmt.Errorf("robust scaler needs center or scale")
	}
	return r, nil
}

// Kind returns "robust".
func (r *Robust) Kind() string { return KindRobust }

// Transform returns (x - center) / scale.
func (r *Robust) Transform(x recommend.Vector) (recommend.Vector, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	out := x.Clone()
	for i := range out {
		if r.center != nil {
			out[i] -= r.center[i]
		}
		if r.scale != nil {
			out[i] /= r.scale[i]
		}
	}
	return out, nil
}

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package recommend

// Feature names as they appear in request bodies and artifact metadata.
const (
	FieldLikes     = "likes"
	FieldComments  = "comments"
	FieldShares    = "shares"
	FieldWatchTime = "watch_time"
)

// NumFeatures is the arity of every feature vector.
const NumFeatures = 4

// FeatureOrder is the column order the artifacts were fitted with.
var FeatureOrder = [NumFeatures]string{FieldLikes, FieldComments, FieldShares, FieldWatchTime}

// FeatureNames returns FeatureOrder as a fresh slice.
func FeatureNames() []string {
	names := make([]string, NumFeatures)
	copy(names, FeatureOrder[:])
	return names
}

// Vector is an ordered feature vector. Raw vectors follow FeatureOrder;
// scaled vectors keep the same positions.
type Vector []float64

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// EngagementSample is one request's engagement metrics after coercion.
// Struct fields are declared in FeatureOrder so validation reports the
// earliest failing feature first.
type EngagementSample struct {
	Likes     float64 `json:"likes" validate:"nonnegative"`
	Comments  float64 `json:"comments" validate:"nonnegative"`
	Shares    float64 `json:"shares" validate:"nonnegative"`
	WatchTime float64 `json:"watch_time" validate:"nonnegative"`
}

// Vector returns the sample in FeatureOrder.
func (s EngagementSample) Vector() Vector {
	return Vector{s.Likes, s.Comments, s.Shares, s.WatchTime}
}

// field returns a pointer to the named feature, or nil.
func (s *EngagementSample) field(name string) *float64 {
	switch name {
	case FieldLikes:
		return &s.Likes
	case FieldComments:
		return &s.Comments
	case FieldShares:
		return &s.Shares
	case FieldWatchTime:
		return &s.WatchTime
	default:
		return nil
	}
}

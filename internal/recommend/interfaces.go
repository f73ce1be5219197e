// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package recommend

// Scaler rescales a raw feature vector with parameters fitted offline.
// Implementations must be immutable and return a new vector of the same arity.
type Scaler interface {
	// Kind returns the scaler family (e.g., "standard", "minmax", "robust").
	Kind() string

	// Transform returns the scaled vector. x is not modified.
	Transform(x Vector) (Vector, error)
}

// Classifier maps a scaled vector to one encoded class.
type Classifier interface {
	// Kind returns the model family (e.g., "linear", "tree", "forest").
	Kind() string

	// Classes returns the encoded class labels the model can emit.
	Classes() []int

	// Predict returns the encoded class for x.
	Predict(x Vector) (int, error)
}

// LabelEncoder is the bijection between encoded class indices and category names.
type LabelEncoder interface {
	// Classes returns the category names in index order.
	Classes() []string

	// Decode returns the category name for an encoded index.
	Decode(index int) (string, error)
}

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package encoder implements the fitted label encoder that maps classifier
// output indices back to category names.
package encoder

import (
	"fmt"
	"strings"
)

// Artifact is the exported form of a fitted LabelEncoder (classes_).
type Artifact struct {
	Classes []string `json:"classes" validate:"required,min=1,dive,required"`
}

// Label is an immutable index-to-category mapping.
type Label struct {
	classes []string
}

// FromArtifact builds a Label from a.
func FromArtifact(a *Artifact) (*Label, error) {
	return New(a.Classes)
}

// New creates a label encoder. Class names must be non-empty and unique.
func New(classes []string) (*Label, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("label encoder has no classes")
	}
	seen := make(map[string]int, len(classes))
	for i, c := range classes {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("class %d is empty", i)
		}
		if prev, dup := seen[c]; dup {
			return nil, fmt.Errorf("class %q appears at %d and %d", c, prev, i)
		}
		seen[c] = i
	}
	return &Label{classes: append([]string(nil), classes...)}, nil
}

// Classes returns a copy of the category names in index order.
func (l *Label) Classes() []string {
	return append([]string(nil), l.classes...)
}

// Decode returns the category for index.
func (l *Label) Decode(index int) (string, error) {
	if index < 0 || index >= len(l.classes) {
		return "", fmt.Errorf("y contains previously unseen label %d (known: 0..%d)", index, len(l.classes)-1)
	}
	return l.classes[index], nil
}

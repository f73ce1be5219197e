// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package classifier

import (
	"fmt"
	"math"

	"github.com/tomtom215/engagerec/internal/recommend"
)

// Classifier kinds.
const (
	KindLinear = "linear"
	KindTree   = "tree"
	KindForest = "forest"
)

// Artifact is the exported form of a fitted classifier.
type Artifact struct {
	Kind         string          `json:"kind" validate:"required,oneof=linear tree forest"`
	Classes      []int           `json:"classes" validate:"required,min=2"`
	FeatureNames []string        `json:"feature_names,omitempty"`
	Coef         [][]float64     `json:"coef,omitempty"`
	Intercept    []float64       `json:"intercept,omitempty"`
	Tree         *TreeArtifact   `json:"tree,omitempty"`
	Trees        []*TreeArtifact `json:"trees,omitempty"`
}

// TreeArtifact holds one tree in scikit-learn's parallel-array layout.
type TreeArtifact struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// FromArtifact builds the classifier described by a.
func FromArtifact(a *Artifact) (recommend.Classifier, error) {
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, err
	}

	switch a.Kind {
	case KindLinear:
		return NewLinear(a.Classes, a.Coef, a.Intercept)
	case KindTree:
		if a.Tree == nil {
			return nil, fmt.Errorf("tree classifier has no tree")
		}
		return NewTree(a.Classes, a.Tree)
	case KindForest:
		return NewForest(a.Classes, a.Trees)
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", a.Kind)
	}
}

func checkFeatureNames(names []string) error {
	if names == nil {
		return nil
	}
	if len(names) != recommend.NumFeatures {
		return fmt.Errorf("feature_names has %d entries, want %d", len(names), recommend.NumFeatures)
	}
	for i, name := range names {
		if name != recommend.FeatureOrder[i] {
			return fmt.Errorf("feature order mismatch at position %d: artifact has %q, service expects %q",
				i, name, recommend.FeatureOrder[i])
		}
	}
	return nil
}

func checkClasses(classes []int) error {
	if len(classes) < 2 {
		return fmt.Errorf("classifier needs at least 2 classes, got %d", len(classes))
	}
	seen := make(map[int]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate class %d", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func checkInput(x recommend.Vector) error {
	if len(x) != recommend.NumFeatures {
		return fmt.Errorf("expected %d features, got %d", recommend.NumFeatures, len(x))
	}
	for i, v := range x {
		if math.IsNaN(v) {
			return fmt.Errorf("feature %s is NaN", recommend.FeatureOrder[i])
		}
	}
	return nil
}

// argmax returns the index of the largest value, lowest index on ties.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

func copyInts(in []int) []int {
	return append([]int(nil), in...)
}

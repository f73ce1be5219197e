// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package classifier

import (
	"fmt"

	"github.com/tomtom215/engagerec/internal/recommend"
)

// Forest is a fitted tree ensemble using soft voting.
type Forest struct {
	classes []int
	trees   []*Tree
}

// NewForest validates every tree and returns the ensemble.
func NewForest(classes []int, trees []*TreeArtifact) (*Forest, error) {
	if err := checkClasses(classes); err != nil {
		return nil, err
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("forest has no trees")
	}

	f := &Forest{classes: copyInts(classes), trees: make([]*Tree, len(trees))}
	for i, ta := range trees {
		if ta == nil {
			return nil, fmt.Errorf("tree %d is null", i)
		}
		t, err := buildTree(classes, ta)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		f.trees[i] = t
	}
	return f, nil
}

// Kind returns "forest".
func (f *Forest) Kind() string { return KindForest }

// Classes returns a copy of the class labels.
func (f *Forest) Classes() []int { return copyInts(f.classes) }

// Size returns the number of trees.
func (f *Forest) Size() int { return len(f.trees) }

// PredictProba returns the mean of the per-tree leaf distributions.
func (f *Forest) PredictProba(x recommend.Vector) ([]float64, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	avg := make([]float64, len(f.classes))
	for _, t := range f.trees {
		for i, p := range t.leafProba(x) {
			avg[i] += p
		}
	}
	n := float64(len(f.trees))
	for i := range avg {
		avg[i] /= n
	}
	return avg, nil
}

// Predict returns the class with the highest mean probability.
func (f *Forest) Predict(x recommend.Vector) (int, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return f.classes[argmax(proba)], nil
}

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

// Linear is a fitted linear classifier: decision = coef · x + intercept.
type Linear struct {
	classes   []int
	coef      [][]float64
	intercept []float64
}

// NewLinear creates a linear classifier. A binary model has one coefficient
// row; a multiclass model has one row per class.
func NewLinear(classes []int, coef [][]float64, intercept []float64) (*Linear, error) {
	if err := checkClasses(classes); err != nil {
		return nil, err
	}

	rows := len(classes)
	if len(classes) == 2 {
		rows = 1
	}
	if len(coef) != rows {
		return nil, fmt.Errorf("coef has %d rows, want %d for %d classes", len(coef), rows, len(classes))
	}
	if len(intercept) != rows {
		return nil, fmt.Errorf("intercept has %d values, want %d", len(intercept), rows)
	}

	l := &Linear{
		classes:   copyInts(classes),
		coef:      make([][]float64, rows),
		intercept: append([]float64(nil), intercept...),
	}
	for i, row := range coef {
		if len(row) != recommend.NumFeatures {
			return nil, fmt.Errorf("coef row %d has %d values, want %d", i, len(row), recommend.NumFeatures)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("coef[%d][%d] is not finite", i, j)
			}
		}
		l.coef[i] = append([]float64(nil), row...)
	}
	return l, nil
}

// Kind returns "linear".
func (l *Linear) Kind() string { return KindLinear }

// Classes returns a copy of the class labels.
func (l *Linear) Classes() []int { return copyInts(l.classes) }

// DecisionFunction returns one score per coefficient row.
func (l *Linear) DecisionFunction(x recommend.Vector) ([]float64, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	scores := make([]float64, len(l.coef))
	for i, row := range l.coef {
		s := l.intercept[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}
	return scores, nil
}

// Predict returns classes[1] when the binary decision is positive, otherwise
// the class with the highest score.
func (l *Linear) Predict(x recommend.Vector) (int, error) {
	scores, err := l.DecisionFunction(x)
	if err != nil {
		return 0, err
	}
	if len(scores) == 1 {
		if scores[0] > 0 {
			return l.classes[1], nil
		}
		return l.classes[0], nil
	}
	return l.classes[argmax(scores)], nil
}

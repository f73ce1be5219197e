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

const leaf = -1

// Tree is a fitted decision tree.
type Tree struct {
	classes   []int
	left      []int
	right     []int
	feature   []int
	threshold []float64
	proba     [][]float64 // leaf rows normalised to sum 1
}

// NewTree validates the tree structure and returns a classifier over classes.
func NewTree(classes []int, t *TreeArtifact) (*Tree, error) {
	if err := checkClasses(classes); err != nil {
		return nil, err
	}
	return buildTree(classes, t)
}

func buildTree(classes []int, t *TreeArtifact) (*Tree, error) {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return nil, fmt.Errorf("tree arrays disagree on node count: left=%d right=%d feature=%d threshold=%d value=%d",
			n, len(t.ChildrenRight), len(t.Feature), len(t.Threshold), len(t.Value))
	}

	tree := &Tree{
		classes:   copyInts(classes),
		left:      copyInts(t.ChildrenLeft),
		right:     copyInts(t.ChildrenRight),
		feature:   copyInts(t.Feature),
		threshold: append([]float64(nil), t.Threshold...),
		proba:     make([][]float64, n),
	}

	for i := 0; i < n; i++ {
		l, r := tree.left[i], tree.right[i]
		if l == leaf || r == leaf {
			if l != r {
				return nil, fmt.Errorf("node %d has only one child", i)
			}
			row, err := normalise(i, t.Value[i], len(classes))
			if err != nil {
				return nil, err
			}
			tree.proba[i] = row
			continue
		}
		if l <= i || l >= n || r <= i || r >= n {
			return nil, fmt.Errorf("node %d has child out of range (left=%d right=%d, nodes=%d)", i, l, r, n)
		}
		if f := tree.feature[i]; f < 0 || f >= recommend.NumFeatures {
			return nil, fmt.Errorf("node %d splits on feature %d, want [0, %d)", i, f, recommend.NumFeatures)
		}
		if math.IsNaN(tree.threshold[i]) {
			return nil, fmt.Errorf("node %d threshold is NaN", i)
		}
	}
	return tree, nil
}

// normalise converts leaf class weights (counts or fractions) to probabilities.
func normalise(node int, weights []float64, nClasses int) ([]float64, error) {
	if len(weights) != nClasses {
		return nil, fmt.Errorf("node %d value has %d entries, want %d", node, len(weights), nClasses)
	}
	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("node %d has invalid class weight %v", node, w)
		}
		sum += w
	}
	if sum == 0 {
		return nil, fmt.Errorf("node %d has no class weight", node)
	}
	out := make([]float64, nClasses)
	for i, w := range weights {
		out[i] = w / sum
	}
	return out, nil
}

// Kind returns "tree".
func (t *Tree) Kind() string { return KindTree }

// Classes returns a copy of the class labels.
func (t *Tree) Classes() []int { return copyInts(t.classes) }

// PredictProba returns the class distribution of the leaf x falls into.
func (t *Tree) PredictProba(x recommend.Vector) ([]float64, error) {
	if err := checkInput(x); err != nil {
		return nil, err
	}
	return append([]float64(nil), t.leafProba(x)...), nil
}

// leafProba walks from the root. Children always have higher indices than
// their parent, so the walk terminates. Features are rounded to float32
// before each comparison, as the fitted thresholds assume.
func (t *Tree) leafProba(x recommend.Vector) []float64 {
	node := 0
	for t.left[node] != leaf {
		if float64(float32(x[t.feature[node]])) <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.proba[node]
}

// Predict returns the majority class of the leaf x falls into.
func (t *Tree) Predict(x recommend.Vector) (int, error) {
	if err := checkInput(x); err != nil {
		return 0, err
	}
	return t.classes[argmax(t.leafProba(x))], nil
}

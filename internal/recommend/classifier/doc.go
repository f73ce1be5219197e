// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package classifier implements fitted classifiers exported from scikit-learn.
//
// Supported model families:
//
//   - Linear: LogisticRegression, LinearSVC, RidgeClassifier (coef_, intercept_)
//   - Tree:   DecisionTreeClassifier (tree_ arrays)
//   - Forest: RandomForestClassifier / ExtraTreesClassifier (estimators_)
//
// Predict returns an entry of Classes(), which are label encoder indices.
// Ties in argmax resolve to the lowest index, as numpy does.
//
// # Tree Layout
//
// Trees use scikit-learn's parallel-array layout. Node 0 is the root. An
// internal node i sends x to children_left[i] when
// x[feature[i]] <= threshold[i], otherwise to children_right[i]. A node whose
// children_left is -1 is a leaf, and value[i] holds its per-class weights.
// Child indices must be greater than the parent index, which rules out cycles.
//
// # Thread Safety
//
// Classifiers are immutable after construction and safe for concurrent use.
package classifier

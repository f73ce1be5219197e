// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

// Package main provides the Engagerec HTTP server
//
// @title Engagerec API
// @version 1.0
// @description Recommends a content category from engagement metrics (likes, comments, shares, watch time) using a pre-trained scaler, classifier and label encoder.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {"status": "error", "message": "likes must be positive"}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/engagerec
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @tag.name Recommendation
// @tag.description Category inference and loaded model metadata
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main

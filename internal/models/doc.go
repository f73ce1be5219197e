// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package models defines the HTTP wire types for Engagerec.

Every response body carries a top-level "status" field, either "success" or
"error". Error bodies carry exactly one other field, "message":

	{"status": "error", "message": "likes must be positive"}

Key Components:

  - RecommendRequest: documented shape of the POST /recommend body
  - RecommendResponse: successful recommendation
  - ErrorResponse: any 4xx/5xx body
  - HealthLiveResponse, HealthReadyResponse: probe bodies
  - ModelInfoResponse: loaded artifact metadata for GET /model

RecommendRequest exists for API documentation. The handler decodes the body
with recommend.ParseSample, which accepts numeric strings and booleans that a
float64 field would reject.
*/
package models

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package middleware provides HTTP middleware components for the application.

All middleware uses chi's func(http.Handler) http.Handler shape so it can be
installed with r.Use().

Key Components:

  - RequestID: UUID request IDs, propagated to the logging context
  - AccessLog: One structured log line per completed request
  - PrometheusMetrics: Request count, latency and in-flight instrumentation

Middleware Stack:

	r.Use(middleware.RequestID)          // X-Request-ID + logging context
	r.Use(chimiddleware.RealIP)          // Client IP from proxy headers
	r.Use(chimiddleware.Recoverer)       // Panics become 500
	r.Use(cors)                          // Preflight handling
	r.Use(middleware.AccessLog)          // Completion log
	r.Use(middleware.PrometheusMetrics)  // api_* metrics

# Endpoint Labels

PrometheusMetrics labels requests with the matched chi route pattern
("/swagger/*") rather than the raw path, which keeps label cardinality
bounded. Requests that match no route are labelled "unmatched".

# Request ID Header

An incoming X-Request-ID is reused when present and at most 128 printable
ASCII characters; otherwise a new UUID v4 is generated. The ID is echoed in
the X-Request-ID response header.
*/
package middleware

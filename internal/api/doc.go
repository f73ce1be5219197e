// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package api provides the HTTP layer for Engagerec.

Routes:

  - POST /recommend: score one engagement sample and return a category
  - GET /health/live: liveness probe with uptime
  - GET /health/ready: 200 when the inference pipeline is loaded, 503 otherwise
  - GET /model: feature order, artifact kinds, categories and checksums
  - GET /metrics: Prometheus exposition
  - GET /swagger/*: Swagger UI

Middleware Stack (applied to every route, in order):

 1. middleware.RequestID: X-Request-ID propagation and logging context
 2. chimiddleware.RealIP: client IP from X-Forwarded-For / X-Real-IP
 3. chimiddleware.Recoverer: converts handler panics to 500
 4. CORS (go-chi/cors): answers OPTIONS preflight, wildcard by default
 5. middleware.AccessLog: one structured line per request
 6. middleware.PrometheusMetrics: request count, duration, in-flight gauge

Error Responses:

Every error body has the form

	{"status": "error", "message": "<text>"}

POST /recommend maps failures as follows:

  - recommend.ErrNoData: 400 "no data provided"
  - *recommend.FormatError: 400 "data format error: <details>"
  - *recommend.NegativeValueError: 400 "<field> must be positive"
  - anything else: 500 "server error: <details>"

Example:

	handler := api.NewHandler(pipeline)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security.CORSOrigins)))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handler holds only immutable state (the pipeline, config and start time) and is
safe for concurrent use.
*/
package api

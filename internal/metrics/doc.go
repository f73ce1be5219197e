// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry via promauto and
exposed at GET /metrics in Prometheus text format:

	curl http://localhost:5001/metrics

# Available Metrics

HTTP Metrics (recorded by middleware.PrometheusMetrics):
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Inference Metrics (recorded by the /recommend handler):
  - recommendations_total: Successful recommendations (counter)
    Labels: category
  - recommendation_errors_total: Rejected or failed requests (counter)
    Labels: kind (no_data, format, negative, not_ready, inference, unknown)
  - inference_duration_seconds: Scaler + classifier + decode time (histogram)
  - model_info: Loaded artifact identity, always 1 (gauge)
    Labels: scaler_kind, classifier_kind, model_sha256
  - model_categories: Number of categories in the label encoder (gauge)

System Metrics:
  - app_info: Version and Go runtime (gauge)
  - app_uptime_seconds: Seconds since start (gauge)

# Example Queries

Category mix over the last hour:

	sum by (category) (increase(recommendations_total[1h]))

Client error rate:

	sum(rate(recommendation_errors_total{kind=~"no_data|format|negative"}[5m]))

p99 inference latency:

	histogram_quantile(0.99, rate(inference_duration_seconds_bucket[5m]))

# Thread Safety

All Prometheus collectors are safe for concurrent use.
*/
package metrics

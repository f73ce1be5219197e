// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package services provides suture.Service wrappers for Engagerec's long-running
components.

Services:

  - HTTPServerService: runs the chi router's http.Server and shuts it down
    gracefully when the supervisor context is canceled
  - UptimeService: refreshes the app_uptime_seconds gauge

Each wrapper implements suture.Service (Serve(ctx) error) and fmt.Stringer so
supervisor event logs name the service. Serve returns ctx.Err() on a normal
stop and a wrapped error on failure, which suture treats as a restartable
crash.

Usage:

	tree.AddAPIService(services.NewHTTPServerService(server, addr, timeout))
	tree.AddTelemetryService(services.NewUptimeService(start, 15*time.Second))
*/
package services

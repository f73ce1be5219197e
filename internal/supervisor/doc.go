// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

/*
Package supervisor provides process supervision for Engagerec using suture v4.

# Overview

	RootSupervisor ("engagerec")
	├── TelemetrySupervisor ("telemetry-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. A failure in the
telemetry layer does not restart the HTTP server.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddTelemetryService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Logging

Supervisor events (start, stop, failure, backoff) go through the sutureslog
hook to the *slog.Logger passed to NewSupervisorTree. main.go passes
logging.NewSlogLogger, which forwards to zerolog.
*/
package supervisor

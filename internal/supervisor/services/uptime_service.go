// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package services

import (
	"context"
	"time"

	"github.com/tomtom215/engagerec/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge on a fixed interval.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService creates an uptime reporter. A non-positive interval
// defaults to 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	metrics.UpdateUptime(u.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(u.start)
		}
	}
}

func (u *UptimeService) String() string {
	return "uptime-reporter"
}

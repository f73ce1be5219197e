// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getGaugeValue extracts the value from a Prometheus gauge
func getGaugeValue(gauge prometheus.Gauge) float64 {
	var m io_prometheus_client.Metric
	if err := gauge.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(h prometheus.Histogram) uint64 {
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
	}{
		{"successful recommendation", "POST", "/recommend", "200"},
		{"bad request", "POST", "/recommend", "400"},
		{"server error", "POST", "/recommend", "500"},
		{"health probe", "GET", "/health/live", "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, 2*time.Millisecond)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", got)
			}
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle tests that inc/dec pairs balance
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	before := getGaugeValue(APIActiveRequests)

	TrackActiveRequest(true)
	if got := getGaugeValue(APIActiveRequests); got != before+1 {
		t.Errorf("during request = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := getGaugeValue(APIActiveRequests); got != before {
		t.Errorf("after request = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	counter := RecommendationsTotal.WithLabelValues("music")
	before := testutil.ToFloat64(counter)
	beforeObs := getHistogramCount(InferenceDuration)

	RecordRecommendation("music", 50*time.Microsecond)
	RecordRecommendation("music", 80*time.Microsecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("recommendations_total{music} delta = %v, want 2", got)
	}
	if got := getHistogramCount(InferenceDuration) - beforeObs; got != 2 {
		t.Errorf("inference_duration_seconds count delta = %d, want 2", got)
	}
}

func TestRecordRecommendationError(t *testing.T) {
	tests := []struct {
		kind      string
		wantLabel string
	}{
		{"format", "format"},
		{"negative", "negative"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			counter := RecommendationErrors.WithLabelValues(tt.wantLabel)
			before := testutil.ToFloat64(counter)

			RecordRecommendationError(tt.kind)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("recommendation_errors_total{%s} delta = %v, want 1", tt.wantLabel, got)
			}
		})
	}
}

func TestSetModelInfo(t *testing.T) {
	SetModelInfo("standard", "linear", "aaa", 3)
	SetModelInfo("robust", "forest", "bbb", 5)

	if got := testutil.CollectAndCount(ModelInfo); got != 1 {
		t.Errorf("model_info series = %d, want 1 after reset", got)
	}
	if got := testutil.ToFloat64(ModelInfo.WithLabelValues("robust", "forest", "bbb")); got != 1 {
		t.Errorf("model_info = %v, want 1", got)
	}
	if got := getGaugeValue(ModelCategories); got != 5 {
		t.Errorf("model_categories = %v, want 5", got)
	}
}

func TestSetAppInfoAndUptime(t *testing.T) {
	SetAppInfo("1.0.0", "go1.24")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "go1.24")); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}

	UpdateUptime(time.Now().Add(-90 * time.Second))
	if got := getGaugeValue(AppUptime); got < 90 || got > 100 {
		t.Errorf("app_uptime_seconds = %v, want ~90", got)
	}
}

// TestConcurrentMetricRecording tests thread safety of metric recording
func TestConcurrentMetricRecording(t *testing.T) {
	counter := RecommendationsTotal.WithLabelValues("concurrency")
	before := testutil.ToFloat64(counter)

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			RecordRecommendation("concurrency", time.Microsecond)
			RecordAPIRequest("POST", "/recommend", "200", time.Millisecond)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(counter) - before; got != goroutines {
		t.Errorf("concurrent recommendations delta = %v, want %d", got, goroutines)
	}
}

// TestMetricGathering tests that metrics can be gathered and pass lint
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordRecommendation("comedy", time.Microsecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		if strings.HasPrefix(p.Metric, "go_") || strings.HasPrefix(p.Metric, "process_") {
			continue
		}
		t.Logf("Metric lint problem: %s: %s", p.Metric, p.Text)
	}
}

// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/engagerec/internal/logging"
	"github.com/tomtom215/engagerec/internal/metrics"
	"github.com/tomtom215/engagerec/internal/recommend"
	"github.com/tomtom215/engagerec/internal/recommend/classifier"
	"github.com/tomtom215/engagerec/internal/recommend/encoder"
	"github.com/tomtom215/engagerec/internal/recommend/scaler"
)

// newTestPipeline builds an identity scaler and a binary linear model that
// predicts "music" when likes exceed watch_time.
func newTestPipeline(t *testing.T) *recommend.Pipeline {
	t.Helper()

	s, err := scaler.NewStandard([]float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}, true, true)
	if err != nil {
		t.Fatalf("NewStandard: %v", err)
	}
	c, err := classifier.NewLinear([]int{0, 1}, [][]float64{{1, 0, 0, -1}}, []float64{0})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	e, err := encoder.New([]string{"education", "music"})
	if err != nil {
		t.Fatalf("encoder.New: %v", err)
	}

	p, err := recommend.NewPipeline(s, c, e,
		recommend.ArtifactInfo{Name: "scaler", Path: "scaler.json", Kind: s.Kind(), Checksum: "aa", SizeBytes: 10},
		recommend.ArtifactInfo{Name: "model", Path: "pretrained_model.json", Kind: c.Kind(), Checksum: "bb", SizeBytes: 20},
		recommend.ArtifactInfo{Name: "label_encoder", Path: "label_encoder.json", Checksum: "cc", SizeBytes: 30},
	)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func newTestServer(t *testing.T, pipeline *recommend.Pipeline) http.Handler {
	t.Helper()
	return NewRouter(NewHandler(pipeline), nil).SetupChi()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestPipeline(t))

	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantCategory string
		wantMessage  string
		wantPrefix   string
	}{
		{
			name:         "valid sample",
			body:         `{"likes": 120, "comments": 14, "shares": 3, "watch_time": 40}`,
			wantStatus:   http.StatusOK,
			wantCategory: "music",
		},
		{
			name:         "watch time dominates",
			body:         `{"likes": 2, "comments": 1, "shares": 0, "watch_time": 500}`,
			wantStatus:   http.StatusOK,
			wantCategory: "education",
		},
		{
			name:         "empty object defaults to zeros",
			body:         `{}`,
			wantStatus:   http.StatusOK,
			wantCategory: "education",
		},
		{
			name:         "numeric strings are coerced",
			body:         `{"likes": " 300 ", "watch_time": "1e2"}`,
			wantStatus:   http.StatusOK,
			wantCategory: "music",
		},
		{
			name:         "unknown keys are ignored",
			body:         `{"likes": 9, "region": "eu"}`,
			wantStatus:   http.StatusOK,
			wantCategory: "music",
		},
		{
			name:        "empty body",
			body:        ``,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "no data provided",
		},
		{
			name:        "json null",
			body:        `null`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "no data provided",
		},
		{
			name:        "invalid json",
			body:        `{"likes": `,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "no data provided",
		},
		{
			name:        "leading zero number",
			body:        `{"likes": 01}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "no data provided",
		},
		{
			name:       "hex float string",
			body:       `{"likes": "0x1p3"}`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "data format error: likes",
		},
		{
			name:        "array body",
			body:        `[1, 2, 3, 4]`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "no data provided",
		},
		{
			name:       "non-numeric string",
			body:       `{"likes": "abc"}`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "data format error: likes",
		},
		{
			name:       "format error wins over negative",
			body:       `{"likes": -1, "shares": [1]}`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "data format error: shares",
		},
		{
			name:        "negative likes",
			body:        `{"likes": -5, "comments": 1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "likes must be positive",
		},
		{
			name:        "first negative in feature order",
			body:        `{"watch_time": -1, "comments": -2}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "comments must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				if body["status"] != "success" {
					t.Errorf("status field = %v", body["status"])
				}
				if body["recommended_category"] != tt.wantCategory {
					t.Errorf("recommended_category = %v, want %q", body["recommended_category"], tt.wantCategory)
				}
				return
			}

			if body["status"] != "error" {
				t.Errorf("status field = %v", body["status"])
			}
			msg, _ := body["message"].(string)
			if tt.wantMessage != "" && msg != tt.wantMessage {
				t.Errorf("message = %q, want %q", msg, tt.wantMessage)
			}
			if tt.wantPrefix != "" && !strings.HasPrefix(msg, tt.wantPrefix) {
				t.Errorf("message = %q, want prefix %q", msg, tt.wantPrefix)
			}
		})
	}
}

func TestRecommend_BodyTooLarge(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestPipeline(t))
	payload := `{"likes": 1, "pad": "` + strings.Repeat("x", maxRequestBodyBytes) + `"}`

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "error" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestRecommend_NoPipeline(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"likes": 1}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	msg, _ := decodeBody(t, rec)["message"].(string)
	if !strings.HasPrefix(msg, "server error: ") {
		t.Errorf("message = %q", msg)
	}
}

func TestRecommend_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestPipeline(t))
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "error" {
		t.Errorf("status field = %v", body["status"])
	}
}

// Not parallel: reads global Prometheus counters.
func TestRecommend_Metrics(t *testing.T) {
	srv := newTestServer(t, newTestPipeline(t))

	okBefore := testutil.ToFloat64(metrics.RecommendationsTotal.WithLabelValues("music"))
	negBefore := testutil.ToFloat64(metrics.RecommendationErrors.WithLabelValues("negative"))

	for _, body := range []string{`{"likes": 10}`, `{"likes": -10}`} {
		req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString(body))
		srv.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(metrics.RecommendationsTotal.WithLabelValues("music")) - okBefore; got != 1 {
		t.Errorf("music recommendations delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.RecommendationErrors.WithLabelValues("negative")) - negBefore; got != 1 {
		t.Errorf("negative errors delta = %v, want 1", got)
	}
}

// Not parallel: swaps the global logger.
func TestRecommend_ErrorLogLevel(t *testing.T) {
	var buf bytes.Buffer
	original := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(original) })

	tests := []struct {
		name      string
		pipeline  *recommend.Pipeline
		body      string
		wantError bool
	}{
		{"client error is not logged at error level", newTestPipeline(t), `{"likes": -1}`, false},
		{"server error is logged at error level", nil, `{"likes": 1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			srv := newTestServer(t, tt.pipeline)
			req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(tt.body))
			srv.ServeHTTP(httptest.NewRecorder(), req)

			gotError := strings.Contains(buf.String(), `"level":"error"`) &&
				strings.Contains(buf.String(), "Recommendation failed")
			if gotError != tt.wantError {
				t.Errorf("error-level log = %v, want %v: %s", gotError, tt.wantError, buf.String())
			}
		})
	}
}

func TestRecommendErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no data", recommend.ErrNoData, http.StatusBadRequest, "no data provided"},
		{
			"format",
			&recommend.FormatError{Field: "shares", Value: "null"},
			http.StatusBadRequest,
			"data format error: shares: could not convert null to float",
		},
		{"negative", &recommend.NegativeValueError{Field: "watch_time", Value: -1}, http.StatusBadRequest, "watch_time must be positive"},
		{
			"inference",
			&recommend.InferenceError{Stage: recommend.StagePredict, Err: errors.New("boom")},
			http.StatusInternalServerError,
			"server error: predict failed: boom",
		},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "server error: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, msg := recommendErrorResponse(tt.err)
			if status != tt.wantStatus || msg != tt.wantMessage {
				t.Errorf("recommendErrorResponse() = (%d, %q), want (%d, %q)", status, msg, tt.wantStatus, tt.wantMessage)
			}
		})
	}
}

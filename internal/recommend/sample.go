// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package recommend

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagerec/internal/validation"
)

// maxValueEcho bounds how much of an offending value is echoed back in errors.
const maxValueEcho = 64

// ParseSample decodes a request body into an EngagementSample.
//
// Absent features default to 0 and unknown keys are ignored. Every feature
// is coerced before any sign check, so a format error takes precedence over
// a negative value elsewhere in the same body.
func ParseSample(body []byte) (EngagementSample, error) {
	var sample EngagementSample

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return sample, ErrNoData
	}

	// goccy accepts some non-RFC 8259 input, such as leading zeros.
	if !stdjson.Valid(trimmed) {
		return sample, ErrNoData
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil || raw == nil {
		return sample, ErrNoData
	}

	for _, name := range FeatureOrder {
		value, ok := raw[name]
		if !ok {
			continue
		}
		f, err := coerce(name, value)
		if err != nil {
			return EngagementSample{}, err
		}
		*sample.field(name) = f
	}

	if verr := validation.ValidateStruct(&sample); verr != nil {
		first := verr.First()
		neg := &NegativeValueError{Field: first.Field()}
		if v, ok := first.Value().(float64); ok {
			neg.Value = v
		}
		return EngagementSample{}, neg
	}

	return sample, nil
}

// coerce converts one JSON value to a finite float64. Numbers and numeric
// strings convert directly, booleans become 1 or 0. Everything else fails.
func coerce(field string, value json.RawMessage) (float64, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return 0, &FormatError{Field: field, Value: "''"}
	}

	switch value[0] {
	case 'n':
		return 0, &FormatError{Field: field, Value: "null"}
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case '[', '{':
		return 0, &FormatError{Field: field, Value: echo(string(value))}
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return 0, &FormatError{Field: field, Value: echo(string(value)), Err: err}
		}
		s = strings.TrimSpace(s)
		if isHexFloat(s) {
			return 0, &FormatError{Field: field, Value: strconv.Quote(echo(s)), Err: strconv.ErrSyntax}
		}
		return parseFloat(field, s, strconv.Quote(echo(s)))
	default:
		return parseFloat(field, string(value), echo(string(value)))
	}
}

func parseFloat(field, s, shown string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &FormatError{Field: field, Value: shown, Err: errNonFinite}
		}
		return 0, &FormatError{Field: field, Value: shown, Err: unwrapNumError(err)}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FormatError{Field: field, Value: shown, Err: errNonFinite}
	}
	return f, nil
}

// unwrapNumError drops strconv's "strconv.ParseFloat: parsing ..." prefix,
// which repeats the value already reported by FormatError.
func unwrapNumError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}

// isHexFloat reports whether s uses a 0x prefix, which ParseFloat accepts
// but decimal-only clients never send.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func echo(s string) string {
	if len(s) <= maxValueEcho {
		return s
	}
	return s[:maxValueEcho] + "..."
}

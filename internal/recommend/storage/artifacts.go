// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagerec/internal/logging"
	"github.com/tomtom215/engagerec/internal/recommend"
	"github.com/tomtom215/engagerec/internal/recommend/classifier"
	"github.com/tomtom215/engagerec/internal/recommend/encoder"
	"github.com/tomtom215/engagerec/internal/recommend/scaler"
	"github.com/tomtom215/engagerec/internal/validation"
)

// Artifact names used in errors, logs and metadata.
const (
	NameScaler       = "scaler"
	NameModel        = "model"
	NameLabelEncoder = "label_encoder"
)

// MaxArtifactBytes bounds how much of one artifact file is read.
const MaxArtifactBytes = 256 << 20

// Paths locates the three artifact files.
type Paths struct {
	Scaler       string
	Model        string
	LabelEncoder string
}

// ArtifactError reports a failure loading one artifact.
type ArtifactError struct {
	Name string
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("artifact %s not found at %s", e.Name, e.Path)
	}
	return fmt.Sprintf("artifact %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// LoadPipeline reads, validates and cross-checks the three artifacts.
func LoadPipeline(ctx context.Context, paths Paths) (*recommend.Pipeline, error) {
	logger := logging.Ctx(ctx)

	var scalerArt scaler.Artifact
	scalerInfo, err := readArtifact(ctx, NameScaler, paths.Scaler, &scalerArt)
	if err != nil {
		return nil, err
	}
	s, err := scaler.FromArtifact(&scalerArt)
	if err != nil {
		return nil, &ArtifactError{Name: NameScaler, Path: paths.Scaler, Err: err}
	}
	scalerInfo.Kind = s.Kind()

	var modelArt classifier.Artifact
	modelInfo, err := readArtifact(ctx, NameModel, paths.Model, &modelArt)
	if err != nil {
		return nil, err
	}
	clf, err := classifier.FromArtifact(&modelArt)
	if err != nil {
		return nil, &ArtifactError{Name: NameModel, Path: paths.Model, Err: err}
	}
	modelInfo.Kind = clf.Kind()

	var encoderArt encoder.Artifact
	encoderInfo, err := readArtifact(ctx, NameLabelEncoder, paths.LabelEncoder, &encoderArt)
	if err != nil {
		return nil, err
	}
	enc, err := encoder.FromArtifact(&encoderArt)
	if err != nil {
		return nil, &ArtifactError{Name: NameLabelEncoder, Path: paths.LabelEncoder, Err: err}
	}
	encoderInfo.Kind = "label"

	pipeline, err := recommend.NewPipeline(s, clf, enc, scalerInfo, modelInfo, encoderInfo)
	if err != nil {
		return nil, fmt.Errorf("artifacts are inconsistent: %w", err)
	}

	for _, info := range []recommend.ArtifactInfo{scalerInfo, modelInfo, encoderInfo} {
		logger.Info().
			Str("artifact", info.Name).
			Str("path", info.Path).
			Str("kind", info.Kind).
			Str("sha256", info.Checksum).
			Int64("size_bytes", info.SizeBytes).
			Msg("Loaded artifact")
	}

	return pipeline, nil
}

// readArtifact reads path, records its checksum and decodes it into target.
func readArtifact(ctx context.Context, name, path string, target interface{}) (recommend.ArtifactInfo, error) {
	info := recommend.ArtifactInfo{Name: name, Path: path}

	if err := ctx.Err(); err != nil {
		return info, err
	}
	if strings.TrimSpace(path) == "" {
		return info, &ArtifactError{Name: name, Path: path, Err: errors.New("path is empty")}
	}

	raw, err := readFile(path)
	if err != nil {
		return info, &ArtifactError{Name: name, Path: path, Err: err}
	}

	hash := sha256.Sum256(raw)
	info.Checksum = hex.EncodeToString(hash[:])
	info.SizeBytes = int64(len(raw))

	data := raw
	if strings.HasSuffix(path, ".gz") {
		data, err = gunzip(raw)
		if err != nil {
			return info, &ArtifactError{Name: name, Path: path, Err: fmt.Errorf("decompress: %w", err)}
		}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return info, &ArtifactError{Name: name, Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	if verr := validation.ValidateStruct(target); verr != nil {
		return info, &ArtifactError{Name: name, Path: path, Err: verr}
	}

	return info, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable

	data, err := io.ReadAll(io.LimitReader(f, MaxArtifactBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(data) > MaxArtifactBytes {
		return nil, fmt.Errorf("file exceeds %d bytes", MaxArtifactBytes)
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	out, err := io.ReadAll(io.LimitReader(gzr, MaxArtifactBytes+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxArtifactBytes {
		return nil, fmt.Errorf("decompressed artifact exceeds %d bytes", MaxArtifactBytes)
	}
	return out, nil
}

// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/text"
)

// Artifact format identifiers, embedded in the JSON files.
const (
	vocabularyFormat = "sentirec/vocabulary"
	classifierFormat = "sentirec/classifier"
)

// ArtifactInfo describes a loaded artifact for logging and health reporting.
type ArtifactInfo struct {
	Path      string    `json:"path"`
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	TrainedAt time.Time `json:"trained_at"`
	Checksum  string    `json:"checksum"`
	Dim       int       `json:"dim"`
}

// vocabularyArtifact mirrors the on-disk vocabulary JSON layout.
type vocabularyArtifact struct {
	Format    string         `json:"format"`
	Version   int            `json:"version"`
	TrainedAt time.Time      `json:"trained_at"`
	Terms     map[string]int `json:"terms"`
	IDF       []float64      `json:"idf"`
}

// classifierArtifact mirrors the on-disk classifier JSON layout.
type classifierArtifact struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	TrainedAt time.Time `json:"trained_at"`
	Bias      float64   `json:"bias"`
	Weights   []float64 `json:"weights"`
}

// LoadVocabulary reads a vocabulary artifact from a JSON file, optionally
// gzip-compressed (".gz" suffix). The checksum in the returned info covers
// the decoded JSON payload.
func LoadVocabulary(path string) (*Vocabulary, *ArtifactInfo, error) {
	raw, checksum, err := readArtifact(path)
	if err != nil {
		return nil, nil, err
	}

	var art vocabularyArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
	}
	if art.Format != vocabularyFormat {
		return nil, nil, fmt.Errorf("%w: %s: format %q, want %q",
			ErrInvalidArtifact, path, art.Format, vocabularyFormat)
	}

	vocab, err := NewVocabulary(art.Terms, art.IDF)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	info := &ArtifactInfo{
		Path:      path,
		Format:    art.Format,
		Version:   art.Version,
		TrainedAt: art.TrainedAt,
		Checksum:  checksum,
		Dim:       vocab.Dim(),
	}
	logging.Info().
		Str("path", path).
		Int("version", art.Version).
		Int("dim", vocab.Dim()).
		Int("terms", vocab.Terms()).
		Str("checksum", checksum).
		Msg("Vocabulary artifact loaded")
	return vocab, info, nil
}

// LoadModel reads a classifier artifact from a JSON file, optionally
// gzip-compressed (".gz" suffix).
func LoadModel(path string) (*Model, *ArtifactInfo, error) {
	raw, checksum, err := readArtifact(path)
	if err != nil {
		return nil, nil, err
	}

	var art classifierArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
	}
	if art.Format != classifierFormat {
		return nil, nil, fmt.Errorf("%w: %s: format %q, want %q",
			ErrInvalidArtifact, path, art.Format, classifierFormat)
	}

	model, err := NewModel(art.Bias, art.Weights)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	info := &ArtifactInfo{
		Path:      path,
		Format:    art.Format,
		Version:   art.Version,
		TrainedAt: art.TrainedAt,
		Checksum:  checksum,
		Dim:       model.Dim(),
	}
	logging.Info().
		Str("path", path).
		Int("version", art.Version).
		Int("dim", model.Dim()).
		Str("checksum", checksum).
		Msg("Classifier artifact loaded")
	return model, info, nil
}

// LoadClassifier loads both artifacts and wires them to a normalizer. The
// dimension cross-check in NewClassifier makes artifact mismatches fatal
// here, before the server starts serving.
func LoadClassifier(n *text.Normalizer, vocabPath, modelPath string, threshold float64) (*Classifier, error) {
	vocab, _, err := LoadVocabulary(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	model, _, err := LoadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	return NewClassifier(n, vocab, model, threshold)
}

// readArtifact reads a file, transparently decompressing ".gz" paths, and
// returns the payload with its hex SHA-256 checksum.
func readArtifact(path string) ([]byte, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read artifact: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
		}
		defer func() {
			_ = gz.Close()
		}()
		raw, err = io.ReadAll(gz)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
		}
	}

	hash := sha256.Sum256(raw)
	return raw, hex.EncodeToString(hash[:]), nil
}

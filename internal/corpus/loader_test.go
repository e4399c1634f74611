// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `username,product,rating,review_text,created_at
alice,P1,5,"Great product, works perfectly",2025-06-01 10:00:00
alice,P2,3,"It is fine",2025-06-01 11:00:00
bob,P1,4,"Liked it",2025-06-01 10:30:00
bob,P2,2,"Not good at all",2025-06-01 11:30:00
,P3,4,"No username here",2025-06-01 12:00:00
carol,,4,"No product here",2025-06-01 12:30:00
carol,P3,9,"Rating out of range",2025-06-01 13:00:00
carol,P1,2,"Changed my mind",2025-06-02 09:00:00
carol,P1,5,"Actually great",2025-06-03 09:00:00
`

func writeTestCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeTestCSV(t, "reviews.csv", testCSV)

	ds, err := Load(context.Background(), LoaderConfig{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if ds.Size() != 6 {
		t.Errorf("Size() = %d, want 6 accepted records", ds.Size())
	}
	if ds.Skipped() != 3 {
		t.Errorf("Skipped() = %d, want 3 malformed records", ds.Skipped())
	}

	m := ds.Matrix()
	if m.NumUsers() != 3 {
		t.Errorf("NumUsers() = %d, want 3", m.NumUsers())
	}

	// carol rated P1 twice; the 2025-06-03 record must win.
	rating, ok := m.Rating("carol", "P1")
	if !ok {
		t.Fatal("Rating(carol, P1) not found")
	}
	if rating != 5.0 {
		t.Errorf("Rating(carol, P1) = %v, want 5.0 (latest record)", rating)
	}

	// Both carol/P1 records stay available for sentiment aggregation.
	count := 0
	for _, r := range ds.ItemReviews("P1") {
		if r.Username == "carol" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("carol has %d P1 reviews in the item index, want 2", count)
	}
}

func TestLoad_CSVGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviews.csv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(testCSV)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ds, err := Load(context.Background(), LoaderConfig{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Size() != 6 {
		t.Errorf("Size() = %d, want 6", ds.Size())
	}
}

func TestLoad_CSVWithoutOptionalColumns(t *testing.T) {
	csv := `username,product,rating
alice,P1,5
bob,P1,4
`
	path := writeTestCSV(t, "bare.csv", csv)

	ds, err := Load(context.Background(), LoaderConfig{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if ds.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", ds.Size())
	}
	r := ds.Reviews()[0]
	if r.Text != "" {
		t.Errorf("Text = %q, want empty for a source without review_text", r.Text)
	}
	if !r.Timestamp.IsZero() {
		t.Errorf("Timestamp = %v, want zero for a source without created_at", r.Timestamp)
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	csv := `username,rating
alice,5
`
	path := writeTestCSV(t, "broken.csv", csv)

	_, err := Load(context.Background(), LoaderConfig{Path: path})
	if err == nil {
		t.Fatal("Load() expected error for missing product column")
	}
	if !strings.Contains(err.Error(), "product") {
		t.Errorf("Load() error = %v, want mention of the missing column", err)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	csv := `username,product,rating,review_text,created_at
`
	path := writeTestCSV(t, "empty.csv", csv)

	_, err := Load(context.Background(), LoaderConfig{Path: path})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Load() error = %v, want ErrEmptyDataset", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), LoaderConfig{Path: filepath.Join(t.TempDir(), "absent.csv")})
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load(context.Background(), LoaderConfig{})
	if err == nil {
		t.Fatal("Load() expected error for empty path")
	}
}

func TestLoad_InvalidTableName(t *testing.T) {
	path := writeTestCSV(t, "data.duckdb", "not a real database")

	_, err := Load(context.Background(), LoaderConfig{Path: path, Table: "reviews; DROP TABLE users"})
	if err == nil {
		t.Fatal("Load() expected error for invalid table name")
	}
	if !strings.Contains(err.Error(), "invalid table name") {
		t.Errorf("Load() error = %v, want invalid table name", err)
	}
}

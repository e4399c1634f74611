// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/metrics"
)

// DefaultTable is the table read from DuckDB database sources when the
// configuration does not name one.
const DefaultTable = "reviews"

// LoaderConfig selects the snapshot source.
type LoaderConfig struct {
	// Path points at a CSV file (optionally .gz) or a DuckDB database file.
	Path string
	// Table is the table to read when Path is a DuckDB database file.
	Table string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads the snapshot source and builds an immutable Dataset. Malformed
// records are skipped and counted; an unreadable source or an empty result is
// an error.
func Load(ctx context.Context, cfg LoaderConfig) (*Dataset, error) {
	start := time.Now()

	if cfg.Path == "" {
		return nil, fmt.Errorf("snapshot source path is empty")
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("snapshot source not readable: %w", err)
	}

	conn, relation, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(conn)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = conn.PingContext(pingCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot source: %w", err)
	}

	columns, err := probeColumns(ctx, conn, relation)
	if err != nil {
		return nil, err
	}
	selectList, err := buildSelectList(columns)
	if err != nil {
		return nil, err
	}

	reviews, skipped, err := scanReviews(ctx, conn, selectList, relation)
	if err != nil {
		return nil, err
	}

	ds, err := NewDataset(reviews, skipped)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", cfg.Path, err)
	}

	metrics.CorpusRecordsLoaded.Add(float64(len(reviews)))
	ds.recordLoadMetrics(time.Since(start))

	logging.Info().
		Str("path", cfg.Path).
		Dur("duration", time.Since(start)).
		Msg("Snapshot loaded")

	return ds, nil
}

// openSource opens a DuckDB connection for the configured source and returns
// the relation the review query selects from: a read_csv_auto call for CSV
// sources, or a validated table identifier for database files.
func openSource(cfg LoaderConfig) (*sql.DB, string, error) {
	// Auto-install/auto-load stay disabled so loads cannot hang fetching
	// extensions in restricted network environments.
	options := fmt.Sprintf("threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false",
		runtime.NumCPU())

	if isCSVSource(cfg.Path) {
		conn, err := sql.Open("duckdb", ":memory:?"+options)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open in-memory database: %w", err)
		}
		relation := fmt.Sprintf("read_csv_auto('%s')", strings.ReplaceAll(cfg.Path, "'", "''"))
		return conn, relation, nil
	}

	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	if !identifierPattern.MatchString(table) {
		return nil, "", fmt.Errorf("invalid table name %q", table)
	}

	connStr := fmt.Sprintf("%s?access_mode=read_only&%s", cfg.Path, options)
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}
	return conn, table, nil
}

func isCSVSource(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".csv.gz")
}

// probeColumns returns the column names the relation exposes.
func probeColumns(ctx context.Context, conn *sql.DB, relation string) (map[string]bool, error) {
	query := fmt.Sprintf("SELECT column_name FROM (DESCRIBE SELECT * FROM %s)", relation)
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to describe snapshot source: %w", err)
	}
	defer closeQuietly(rows)

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to read source schema: %w", err)
		}
		columns[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source schema: %w", err)
	}
	return columns, nil
}

// buildSelectList maps the source schema onto the five review columns.
// username, product, and rating are required; review_text and created_at are
// substituted with NULL when the source lacks them. TRY_CAST keeps a single
// unparseable value a per-record skip instead of a load failure.
func buildSelectList(columns map[string]bool) (string, error) {
	for _, required := range []string{"username", "product", "rating"} {
		if !columns[required] {
			return "", fmt.Errorf("snapshot source is missing required column %q", required)
		}
	}

	parts := []string{
		"CAST(username AS VARCHAR) AS username",
		"CAST(product AS VARCHAR) AS product",
		"TRY_CAST(rating AS DOUBLE) AS rating",
	}
	if columns["review_text"] {
		parts = append(parts, "CAST(review_text AS VARCHAR) AS review_text")
	} else {
		parts = append(parts, "CAST(NULL AS VARCHAR) AS review_text")
	}
	if columns["created_at"] {
		parts = append(parts, "TRY_CAST(created_at AS TIMESTAMP) AS created_at")
	} else {
		parts = append(parts, "CAST(NULL AS TIMESTAMP) AS created_at")
	}
	return strings.Join(parts, ", "), nil
}

// scanReviews streams the source rows, validating each record. Row order is
// the snapshot order used for duplicate tie-breaking.
func scanReviews(ctx context.Context, conn *sql.DB, selectList, relation string) ([]Review, int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", selectList, relation)
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query snapshot source: %w", err)
	}
	defer closeQuietly(rows)

	var (
		reviews []Review
		skipped int
	)
	for rows.Next() {
		var (
			username sql.NullString
			product  sql.NullString
			rating   sql.NullFloat64
			text     sql.NullString
			stamp    sql.NullTime
		)
		if err := rows.Scan(&username, &product, &rating, &text, &stamp); err != nil {
			skipped++
			metrics.RecordCorpusSkip("scan")
			logging.Warn().Err(err).Msg("Skipping unreadable review record")
			continue
		}

		if !rating.Valid {
			skipped++
			metrics.RecordCorpusSkip("scan")
			logging.Warn().
				Str("username", username.String).
				Str("product", product.String).
				Msg("Skipping review record with unparseable rating")
			continue
		}

		r := Review{
			Username:  strings.TrimSpace(username.String),
			Product:   strings.TrimSpace(product.String),
			Rating:    rating.Float64,
			Text:      text.String,
			Timestamp: stamp.Time,
		}
		if err := r.Validate(); err != nil {
			skipped++
			metrics.RecordCorpusSkip(skipReason(err))
			logging.Warn().
				Err(err).
				Str("username", r.Username).
				Str("product", r.Product).
				Msg("Skipping malformed review record")
			continue
		}

		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read snapshot source: %w", err)
	}
	return reviews, skipped, nil
}

// closeQuietly closes a resource where the error adds nothing actionable.
func closeQuietly(c interface{ Close() error }) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Msg("Close failed")
	}
}

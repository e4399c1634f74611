// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package corpus loads the review dataset and derives the in-memory structures
the recommendation pipeline works on.

A Dataset is an immutable snapshot: the accepted review records, a per-item
review index for sentiment aggregation, and a RatingMatrix holding the sparse
user-item ratings together with per-user means, mean-centered vectors, and
per-item popularity statistics.

# Loading

Snapshots are loaded through DuckDB. Two source layouts are supported:

  - A CSV file (optionally gzip-compressed), read via read_csv_auto.
  - A DuckDB database file opened read-only, read from a configured table.

Sources must provide username, product, and rating columns. The review_text
and created_at columns are optional; records without text are kept for rating
purposes but cannot contribute to sentiment aggregation, and records without a
timestamp fall back to snapshot order for duplicate resolution.

Malformed records (missing user or item, rating outside [1, 5]) are skipped
with a warning and a metrics counter increment. A malformed record never
aborts a load.

# Rating Semantics

The matrix is sparse: absence of a rating means "unobserved" and is never
conflated with a rating of zero. Duplicate (user, item) pairs resolve
latest-wins by timestamp; ties fall to the record appearing later in the
snapshot. Duplicates are never averaged.

# Thread Safety

Dataset and RatingMatrix are immutable after construction and safe for
unbounded concurrent reads. Loading a new snapshot builds a new Dataset;
callers swap the reference.
*/
package corpus

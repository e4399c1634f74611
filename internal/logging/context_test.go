// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "req-123")
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	t.Parallel()

	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == "" || b == "" {
		t.Fatal("GenerateRequestID returned empty string")
	}
	if a == b {
		t.Errorf("GenerateRequestID returned duplicate IDs: %q", a)
	}
}

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "info", Format: "json", Output: &buf})

	ctx := ContextWithRequestID(context.Background(), "abc-def")
	Ctx(ctx).Info().Msg("with request id")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"abc-def"`) {
		t.Errorf("expected request_id field in output, got: %s", output)
	}
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "info", Format: "json", Output: &buf})

	Ctx(context.Background()).Info().Msg("no request id")

	output := buf.String()
	if strings.Contains(output, "request_id") {
		t.Errorf("expected no request_id field, got: %s", output)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer

	custom := NewTestLogger(&buf).With().Str("source", "custom").Logger()
	ctx := ContextWithLogger(context.Background(), custom)

	logger := LoggerFromContext(ctx)
	logger.Info().Msg("from context")

	output := buf.String()
	if !strings.Contains(output, `"source":"custom"`) {
		t.Errorf("expected custom logger fields, got: %s", output)
	}
}

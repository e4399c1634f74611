// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package models defines the wire-level request and response types for the
HTTP API.

Every endpoint wraps its payload in the APIResponse envelope:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "query_time_ms": 12}
	}

	{
	  "status": "error",
	  "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}},
	  "metadata": {"timestamp": "..."}
	}

The package holds plain data structures only. Engine types that already
carry their own JSON contract (recommendation responses, engine stats) are
placed into the envelope directly by the api package.
*/
package models

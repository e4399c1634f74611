// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package services provides suture.Service wrappers for Sentirec components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns into suture's context-aware
Serve pattern.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Engine Maintenance (EngineService):
  - Periodic expired-entry sweep of the in-process response cache
  - Periodic stats heartbeat logging request and cache counters
  - Clean shutdown on context cancellation

# Error Handling

Return values determine supervisor behavior:

	nil       -> service stopped cleanly, will not restart
	error     -> service crashed, supervisor will restart
	ctx.Err() -> shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer; suture uses it to identify the
service in its event log.
*/
package services

// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package supervisor provides process supervision for Sentirec using suture v4.

This package implements a hierarchical supervisor tree that manages the
lifecycle of the long-running services in the application. It provides
Erlang/OTP-style supervision with automatic restart, failure isolation,
and graceful shutdown.

# Overview

The supervisor tree organizes services into two layers for failure
isolation:

	RootSupervisor ("sentirec")
	├── EngineSupervisor ("engine-layer")
	│   └── EngineService (cache maintenance and stats heartbeat)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that a crash in the engine maintenance loop does
not take down the HTTP server, and each layer restarts independently
with its own failure counter.

# Usage Example

Basic setup in main.go:

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    log.Fatal(err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddEngineService(services.NewEngineService(engine, cfg, zlog))

	errCh := tree.ServeBackground(ctx)
	if err := <-errCh; err != nil {
	    log.Printf("supervisor stopped: %v", err)
	}

# Configuration

TreeConfig controls restart behavior. The defaults match suture's
production defaults:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

Each service failure increments a counter that decays exponentially;
once the counter exceeds the threshold, restarts are delayed by the
backoff duration so a crash loop cannot spin the CPU.

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return nil for a clean stop (no restart), an error to request a
restart, or ctx.Err() when shutdown was requested.

# What Is NOT Supervised

The corpus load and classifier artifact parsing are deliberately not
supervised. They run once at startup before the tree starts, and a
failure there is fatal: the process has nothing to serve without a
loaded snapshot, so restarting a loader service would only loop.

# Debugging Shutdown Issues

If services do not stop within the timeout:

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    log.Printf("service didn't stop: %v", svc)
	}
*/
package supervisor

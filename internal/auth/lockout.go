// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package auth

import (
	"sync"
	"time"
)

// LockoutConfig holds configuration for the login lockout system.
type LockoutConfig struct {
	// MaxAttempts is the number of failed attempts before lockout.
	MaxAttempts int

	// LockoutDuration is the base lockout period.
	LockoutDuration time.Duration

	// ExponentialBackoff doubles the lockout period on each subsequent
	// lockout of the same subject.
	ExponentialBackoff bool

	// MaxLockoutDuration caps the lockout period under backoff.
	MaxLockoutDuration time.Duration
}

// DefaultLockoutConfig returns sensible defaults.
func DefaultLockoutConfig() LockoutConfig {
	return LockoutConfig{
		MaxAttempts:        5,
		LockoutDuration:    15 * time.Minute,
		ExponentialBackoff: true,
		MaxLockoutDuration: 24 * time.Hour,
	}
}

// lockoutEntry tracks failed login attempts for a subject.
type lockoutEntry struct {
	failedAttempts int
	lockoutCount   int
	lockedUntil    time.Time
	lastAttempt    time.Time
}

// LockoutManager tracks failed logins per subject (username or client IP)
// and locks a subject out after repeated failures. State is in-memory; a
// restart clears it, which is an accepted trade for the single admin
// account this protects.
type LockoutManager struct {
	mu      sync.Mutex
	config  LockoutConfig
	entries map[string]*lockoutEntry
}

// NewLockoutManager creates a lockout manager.
func NewLockoutManager(config LockoutConfig) *LockoutManager {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLockoutConfig().MaxAttempts
	}
	if config.LockoutDuration <= 0 {
		config.LockoutDuration = DefaultLockoutConfig().LockoutDuration
	}
	if config.MaxLockoutDuration <= 0 {
		config.MaxLockoutDuration = DefaultLockoutConfig().MaxLockoutDuration
	}

	return &LockoutManager{
		config:  config,
		entries: make(map[string]*lockoutEntry),
	}
}

// IsLocked reports whether the subject is currently locked out, and until
// when.
func (m *LockoutManager) IsLocked(subject string) (bool, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[subject]
	if !ok {
		return false, time.Time{}
	}
	if time.Now().Before(entry.lockedUntil) {
		return true, entry.lockedUntil
	}
	return false, time.Time{}
}

// RecordFailure records a failed login attempt. When the subject reaches
// the attempt limit it is locked out and the failure counter resets so the
// next lockout requires a full round of fresh failures.
func (m *LockoutManager) RecordFailure(subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[subject]
	if !ok {
		entry = &lockoutEntry{}
		m.entries[subject] = entry
	}

	entry.failedAttempts++
	entry.lastAttempt = time.Now()

	if entry.failedAttempts < m.config.MaxAttempts {
		return
	}

	duration := m.config.LockoutDuration
	if m.config.ExponentialBackoff && entry.lockoutCount > 0 {
		duration = m.config.LockoutDuration << entry.lockoutCount
		if duration > m.config.MaxLockoutDuration || duration <= 0 {
			duration = m.config.MaxLockoutDuration
		}
	}

	entry.lockoutCount++
	entry.lockedUntil = time.Now().Add(duration)
	entry.failedAttempts = 0
}

// RecordSuccess clears lockout state for the subject after a successful
// login.
func (m *LockoutManager) RecordSuccess(subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, subject)
}

// Cleanup removes entries that are neither locked nor recently active.
// Callers run this periodically to bound memory on long uptimes.
func (m *LockoutManager) Cleanup(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for subject, entry := range m.entries {
		if now.Before(entry.lockedUntil) {
			continue
		}
		if now.Sub(entry.lastAttempt) > maxIdle {
			delete(m.entries, subject)
			removed++
		}
	}
	return removed
}

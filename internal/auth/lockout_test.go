// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package auth

import (
	"testing"
	"time"
)

// --- Test: lockout threshold ---

func TestLockoutManager_LocksAfterMaxAttempts(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:     3,
		LockoutDuration: time.Hour,
	})

	m.RecordFailure("admin")
	m.RecordFailure("admin")
	if locked, _ := m.IsLocked("admin"); locked {
		t.Fatalf("IsLocked() = true after 2 of 3 failures")
	}

	m.RecordFailure("admin")
	locked, until := m.IsLocked("admin")
	if !locked {
		t.Fatalf("IsLocked() = false after 3 failures, want locked")
	}
	remaining := time.Until(until)
	if remaining < 59*time.Minute || remaining > 61*time.Minute {
		t.Errorf("locked for %v, want about 1h", remaining)
	}
}

// --- Test: subjects are independent ---

func TestLockoutManager_SubjectsIndependent(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:     2,
		LockoutDuration: time.Hour,
	})

	m.RecordFailure("admin")
	m.RecordFailure("admin")
	m.RecordFailure("10.0.0.7")

	if locked, _ := m.IsLocked("admin"); !locked {
		t.Errorf("IsLocked(admin) = false, want locked")
	}
	if locked, _ := m.IsLocked("10.0.0.7"); locked {
		t.Errorf("IsLocked(10.0.0.7) = true, want unlocked")
	}
	if locked, _ := m.IsLocked("unseen"); locked {
		t.Errorf("IsLocked(unseen) = true, want unlocked")
	}
}

// --- Test: success resets state ---

func TestLockoutManager_SuccessResets(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:     3,
		LockoutDuration: time.Hour,
	})

	m.RecordFailure("admin")
	m.RecordFailure("admin")
	m.RecordSuccess("admin")

	// The counter restarted, so two more failures stay under the limit.
	m.RecordFailure("admin")
	m.RecordFailure("admin")
	if locked, _ := m.IsLocked("admin"); locked {
		t.Errorf("IsLocked() = true, want failure counter reset by success")
	}
}

// --- Test: exponential backoff ---

func TestLockoutManager_ExponentialBackoff(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:        2,
		LockoutDuration:    time.Hour,
		ExponentialBackoff: true,
		MaxLockoutDuration: 3 * time.Hour,
	})

	m.RecordFailure("admin")
	m.RecordFailure("admin")
	_, first := m.IsLocked("admin")

	m.RecordFailure("admin")
	m.RecordFailure("admin")
	_, second := m.IsLocked("admin")

	firstDur := time.Until(first)
	secondDur := time.Until(second)
	if secondDur < firstDur+30*time.Minute {
		t.Errorf("second lockout %v not meaningfully longer than first %v", secondDur, firstDur)
	}

	// A third lockout would be 4h, which the cap pulls back to 3h.
	m.RecordFailure("admin")
	m.RecordFailure("admin")
	_, third := m.IsLocked("admin")
	thirdDur := time.Until(third)
	if thirdDur > 3*time.Hour {
		t.Errorf("third lockout %v exceeds the 3h cap", thirdDur)
	}
	if thirdDur < 2*time.Hour+30*time.Minute {
		t.Errorf("third lockout %v, want about 3h", thirdDur)
	}
}

// --- Test: lockout expiry ---

func TestLockoutManager_ExpiredLockClears(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:     1,
		LockoutDuration: 20 * time.Millisecond,
	})

	m.RecordFailure("admin")
	if locked, _ := m.IsLocked("admin"); !locked {
		t.Fatalf("IsLocked() = false immediately after lockout")
	}

	time.Sleep(40 * time.Millisecond)
	if locked, _ := m.IsLocked("admin"); locked {
		t.Errorf("IsLocked() = true after the lockout period elapsed")
	}
}

// --- Test: cleanup ---

func TestLockoutManager_Cleanup(t *testing.T) {
	m := NewLockoutManager(LockoutConfig{
		MaxAttempts:     3,
		LockoutDuration: time.Hour,
	})

	m.RecordFailure("idle")
	m.RecordFailure("locked")
	m.RecordFailure("locked")
	m.RecordFailure("locked")

	time.Sleep(10 * time.Millisecond)

	removed := m.Cleanup(time.Millisecond)
	if removed != 1 {
		t.Errorf("Cleanup() = %d, want 1 (idle entry only)", removed)
	}
	if locked, _ := m.IsLocked("locked"); !locked {
		t.Errorf("IsLocked(locked) = false, want locked entries to survive cleanup")
	}
}

// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
// The cause is deliberately not distinguished; telling callers whether the
// username or the password was wrong aids enumeration.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks login credentials against the configured admin
// account. The password is configured as a bcrypt hash, never in plain
// text, so a leaked config file does not leak the password.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier creates a verifier for the configured admin account.
// The hash must be a bcrypt hash; config validation enforces the prefix,
// this re-checks it so the package stands alone.
func NewCredentialVerifier(username, passwordHash string) (*CredentialVerifier, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !strings.HasPrefix(passwordHash, "$2") {
		return nil, fmt.Errorf("password hash must be a bcrypt hash")
	}

	return &CredentialVerifier{
		username:     username,
		passwordHash: []byte(passwordHash),
	}, nil
}

// Verify checks a username/password pair. It returns ErrInvalidCredentials
// on mismatch. Both comparisons always run: the username check uses
// constant-time comparison and the password check always invokes bcrypt,
// so response timing does not reveal whether the username exists.
func (v *CredentialVerifier) Verify(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil

	if !usernameMatch || !passwordMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a persisted signup. Password always holds the hashed
// form, never what the caller submitted.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// addAccountInput is what the create account use case and the repositories
// operate on. Password starts out as plaintext and is swapped for its hash
// before it's handed to a repository.
type addAccountInput struct {
	Name     string
	Email    string
	Password string
}

var (
	dropPlusExtender = regexp.MustCompile(`(\+.*)$`)
	dropPeriods      = strings.NewReplacer(".", "")
)

// cleanEmail strips all the funky characters from an email address.
//
// Essentially this boils down to the following pattern (ignoring case):
//   [a-z0-9]@[a-z0-9].[a-z]
//
// Callers should be aware of when an empty string is returned.
func cleanEmail(email string) string {
	parts := strings.Split(strings.ToLower(email), "@")
	if len(parts) != 2 {
		return ""
	}

	parts[0] = dropPlusExtender.ReplaceAllString(parts[0], "")
	parts[0] = dropPeriods.Replace(parts[0])

	return strings.Join(parts, "@")
}

// generateID creates a new ID for an account.
// Do no assume anything about these ID's other than
// they are strings. Case matters
func generateID() string {
	return uuid.NewString()
}

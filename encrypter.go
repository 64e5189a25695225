// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type encrypter interface {
	// encrypt returns an irreversible hash of plaintext.
	encrypt(ctx context.Context, plaintext string) (string, error)
}

type bcryptEncrypter struct {
	cost int
}

// newBcryptEncrypter clamps cost into the range bcrypt accepts.
func newBcryptEncrypter(cost int) *bcryptEncrypter {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &bcryptEncrypter{cost: cost}
}

func (e *bcryptEncrypter) encrypt(ctx context.Context, plaintext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), e.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %v", err)
	}
	return string(hash), nil
}

// getBcryptCost reads BCRYPT_COST, falling back to bcrypt.DefaultCost
// when it's unset or garbage.
func getBcryptCost() int {
	v := os.Getenv("BCRYPT_COST")
	if v == "" {
		return bcrypt.DefaultCost
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return bcrypt.DefaultCost
	}
	return n
}

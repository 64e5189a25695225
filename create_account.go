// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
)

type createAccount interface {
	// handle hashes the input's password and persists the account,
	// returning whatever the repository created.
	handle(ctx context.Context, input addAccountInput) (*Account, error)
}

// dbAddAccount creates accounts by hashing with an encrypter and then
// writing through an addAccountRepository. Errors from either are
// returned untouched.
type dbAddAccount struct {
	encrypter encrypter
	repo      addAccountRepository
}

func newDBAddAccount(enc encrypter, repo addAccountRepository) *dbAddAccount {
	return &dbAddAccount{
		encrypter: enc,
		repo:      repo,
	}
}

func (uc *dbAddAccount) handle(ctx context.Context, input addAccountInput) (*Account, error) {
	hashed, err := uc.encrypter.encrypt(ctx, input.Password)
	if err != nil {
		return nil, err
	}
	input.Password = hashed
	return uc.repo.add(ctx, input)
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/moov-io/signup/pkg/buntdbaccounts"

	"github.com/go-kit/log"
)

type addAccountRepository interface {
	// add persists a new account, generating its ID.
	// input.Password must already be hashed.
	add(ctx context.Context, input addAccountInput) (*Account, error)
}

// setupAccountRepository picks a storage backend from ACCOUNT_STORAGE
// (sqlite or buntdb, default sqlite). The returned io.Closer releases
// the underlying database.
func setupAccountRepository(ctx context.Context, logger log.Logger) (addAccountRepository, io.Closer, error) {
	switch backend := strings.ToLower(os.Getenv("ACCOUNT_STORAGE")); backend {
	case "", "sqlite":
		db, err := migrate(logger, getSqlitePath())
		if err != nil {
			return nil, nil, err
		}
		go (promMetricCollector{}).run(ctx, db)
		return &sqliteAccountRepository{db: db}, db, nil

	case "buntdb":
		path := getBuntDBPath()
		logger.Log("buntdb", fmt.Sprintf("opening %s", path))
		store, err := buntdbaccounts.New(path)
		if err != nil {
			return nil, nil, fmt.Errorf("problem opening buntdb: %v", err)
		}
		return &buntdbAccountRepository{store: store}, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown ACCOUNT_STORAGE %q", backend)
	}
}

func getBuntDBPath() string {
	path := os.Getenv("BUNTDB_PATH")
	if path == "" || strings.Contains(path, "..") {
		path = "accounts.buntdb"
	}
	return path
}

type buntdbAccountRepository struct {
	store *buntdbaccounts.Store
}

func (r *buntdbAccountRepository) add(ctx context.Context, input addAccountInput) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := buntdbaccounts.Record{
		ID:         generateID(),
		Name:       input.Name,
		Email:      input.Email,
		CleanEmail: cleanEmail(input.Email),
		Password:   input.Password,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.store.Insert(rec); err != nil {
		return nil, err
	}
	return &Account{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}, nil
}

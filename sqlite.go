// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	kitprom "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/log"
	stdprom "github.com/prometheus/client_golang/prometheus"
)

var (
	// migrations holds all our SQL migrations to be done (in order)
	migrations = []string{
		`create table if not exists accounts(account_id primary key, name, email, clean_email, password, created_at timestamp);`,
		`create index if not exists accounts_clean_email on accounts(clean_email);`,
	}

	// Metrics
	connections = kitprom.NewGaugeFrom(stdprom.GaugeOpts{
		Name: "sqlite_connections",
		Help: "How many sqlite connections and what status they're in.",
	}, []string{"state"})
)

type promMetricCollector struct{}

// run exports db's pool stats every second until ctx is done.
func (promMetricCollector) run(ctx context.Context, db *sql.DB) {
	if db == nil {
		return
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		stats := db.Stats()
		connections.With("state", "idle").Set(float64(stats.Idle))
		connections.With("state", "inuse").Set(float64(stats.InUse))
		connections.With("state", "open").Set(float64(stats.OpenConnections))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func getSqlitePath() string {
	path := os.Getenv("SQLITE_DB_PATH")
	if path == "" || strings.Contains(path, "..") {
		// set default if empty or trying to escape
		// don't filepath.ABS to avoid full-fs reads
		path = "auth.db"
	}
	return path
}

func createConnection(logger log.Logger, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = fmt.Errorf("problem opening sqlite3 file: %v", err)
		logger.Log("sqlite", err)
		return nil, err
	}
	return db, nil
}

// migrate runs our database migrations (defined at the top of this file)
// over a sqlite database it creates first.
//
// You use db like any other database/sql driver.
func migrate(logger log.Logger, path string) (*sql.DB, error) {
	db, err := createConnection(logger, path)
	if err != nil {
		return nil, err
	}

	logger.Log("sqlite", fmt.Sprintf("migrating %s", path))
	for i := range migrations {
		row := migrations[i]
		res, err := db.Exec(row)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("migration #%d [%s...] had problem: %v", i, row[:40], err)
		}
		n, err := res.RowsAffected()
		if err == nil {
			logger.Log("sqlite", fmt.Sprintf("migration #%d [%s...] changed %d rows", i, row[:40], n))
		}
	}
	logger.Log("sqlite", "finished migrations")

	return db, nil
}

type sqliteAccountRepository struct {
	db *sql.DB
}

func (r *sqliteAccountRepository) add(ctx context.Context, input addAccountInput) (*Account, error) {
	account := &Account{
		ID:        generateID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: time.Now().UTC(),
	}

	query := `insert into accounts (account_id, name, email, clean_email, password, created_at) values (?, ?, ?, ?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query, account.ID, account.Name, account.Email, cleanEmail(account.Email), account.Password, account.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("problem inserting account: %v", err)
	}
	return account, nil
}

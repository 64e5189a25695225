// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSqliteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := migrate(log.NewNopLogger(), filepath.Join(t.TempDir(), "signup.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSqlite__getSqlitePath(t *testing.T) {
	cases := []struct {
		env, expected string
	}{
		{"", "auth.db"},
		{"../../etc/passwd", "auth.db"},
		{"/tmp/signup.db", "/tmp/signup.db"},
	}
	for i := range cases {
		t.Setenv("SQLITE_DB_PATH", cases[i].env)
		assert.Equal(t, cases[i].expected, getSqlitePath())
	}
}

func TestSqlite__migrateTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.db")

	db, err := migrate(log.NewNopLogger(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = migrate(log.NewNopLogger(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestSqliteAccountRepository__add(t *testing.T) {
	db := createTestSqliteDB(t)
	repo := &sqliteAccountRepository{db: db}

	account, err := repo.add(context.Background(), addAccountInput{
		Name:     "any name",
		Email:    "any.email+test@mail.com",
		Password: "hashed_password",
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "any name", account.Name)
	assert.Equal(t, "any.email+test@mail.com", account.Email)
	assert.Equal(t, "hashed_password", account.Password)
	assert.False(t, account.CreatedAt.IsZero())

	var name, email, clean, password string
	row := db.QueryRow(`select name, email, clean_email, password from accounts where account_id = ?`, account.ID)
	require.NoError(t, row.Scan(&name, &email, &clean, &password))
	assert.Equal(t, "any name", name)
	assert.Equal(t, "any.email+test@mail.com", email)
	assert.Equal(t, "anyemail@mail.com", clean)
	assert.Equal(t, "hashed_password", password)

	// second account gets its own id
	other, err := repo.add(context.Background(), addAccountInput{
		Name:     "other name",
		Email:    "other@mail.com",
		Password: "hashed_password",
	})
	require.NoError(t, err)
	assert.NotEqual(t, account.ID, other.ID)
}

func TestSqliteAccountRepository__closed(t *testing.T) {
	db := createTestSqliteDB(t)
	require.NoError(t, db.Close())

	repo := &sqliteAccountRepository{db: db}
	account, err := repo.add(context.Background(), addAccountInput{Name: "n", Email: "e@mail.com", Password: "p"})
	assert.Nil(t, account)
	assert.Error(t, err)
}

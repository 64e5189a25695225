// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package buntdbaccounts

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	flagDebug = flag.Bool("debug", false, "Create db inside project dir for tests")
)

func makeStore(t *testing.T) *Store {
	t.Helper()

	filename := "store_test.db"
	if *flagDebug {
		os.Remove(filename)
	} else {
		filename = filepath.Join(t.TempDir(), filename)
	}
	s, err := New(filename)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id, cleanEmail string) Record {
	return Record{
		ID:         id,
		Name:       "any name",
		Email:      cleanEmail,
		CleanEmail: cleanEmail,
		Password:   "hashed_password",
		CreatedAt:  time.Date(2018, time.October, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore(t *testing.T) {
	s := makeStore(t)

	// get nothing
	rec, err := s.GetByID("moov")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rec)

	// set something
	require.NoError(t, s.Insert(record("moov", "john@moov.io")))

	// get something
	rec, err = s.GetByID("moov")
	require.NoError(t, err)
	assert.Equal(t, record("moov", "john@moov.io"), *rec)
}

func TestStore__duplicate(t *testing.T) {
	s := makeStore(t)

	require.NoError(t, s.Insert(record("moov", "john@moov.io")))
	err := s.Insert(record("moov", "other@moov.io"))
	assert.ErrorIs(t, err, ErrExists)

	// original is untouched
	rec, err := s.GetByID("moov")
	require.NoError(t, err)
	assert.Equal(t, "john@moov.io", rec.CleanEmail)

	assert.Error(t, s.Insert(record("", "john@moov.io")))
}

func TestStore__findByCleanEmail(t *testing.T) {
	s := makeStore(t)

	// scan nothing
	results, err := s.FindByCleanEmail("john@moov.io")
	require.NoError(t, err)
	assert.Empty(t, results)

	require.NoError(t, s.Insert(record("a", "john@moov.io")))
	require.NoError(t, s.Insert(record("b", "john@moov.io")))
	require.NoError(t, s.Insert(record("c", "jane@moov.io")))

	results, err = s.FindByCleanEmail("john@moov.io")
	require.NoError(t, err)
	require.Len(t, results, 2)
	ids := []string{results[0].ID, results[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStore__memory(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Insert(record("moov", "john@moov.io")))
	_, err = s.GetByID("moov")
	assert.NoError(t, err)
}

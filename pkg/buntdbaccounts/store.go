// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package buntdbaccounts stores account records in BuntDB
// (https://github.com/tidwall/buntdb) as JSON documents.
package buntdbaccounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"
)

var (
	// ErrExists is returned by Insert when the record's ID is already taken.
	ErrExists = errors.New("account already exists")

	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("account not found")
)

const cleanEmailIndex = "clean_email"

// Record is the stored form of an account. Password is expected to be hashed.
type Record struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CleanEmail string    `json:"clean_email"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"created_at"`
}

func key(id string) string {
	return fmt.Sprintf("account:%s", id)
}

// New opens (or creates) the database at path. ":memory:" keeps
// everything in memory.
func New(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.CreateIndex(cleanEmailIndex, "account:*", buntdb.IndexJSON("clean_email")); err != nil {
		db.Close()
		return nil, fmt.Errorf("problem creating %s index: %v", cleanEmailIndex, err)
	}
	return &Store{
		db: db,
	}, nil
}

type Store struct {
	db *buntdb.DB
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert writes rec, refusing to overwrite an existing ID.
func (s *Store) Insert(rec Record) error {
	if rec.ID == "" {
		return errors.New("missing record ID")
	}
	bs, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("problem encoding %s: %v", rec.ID, err)
	}

	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Get(key(rec.ID))
		if err == nil {
			return ErrExists
		}
		if err != buntdb.ErrNotFound {
			return err
		}
		_, _, err = tx.Set(key(rec.ID), string(bs), nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("problem inserting %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) GetByID(id string) (*Record, error) {
	var rec Record
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key(id))
		if err != nil {
			if err == buntdb.ErrNotFound {
				return ErrNotFound
			}
			return err
		}
		return json.Unmarshal([]byte(v), &rec)
	})
	if err != nil {
		return nil, fmt.Errorf("problem reading %s: %w", id, err)
	}
	return &rec, nil
}

// FindByCleanEmail returns every record stored under the normalized email.
func (s *Store) FindByCleanEmail(email string) ([]Record, error) {
	pivot, err := json.Marshal(map[string]string{"clean_email": email})
	if err != nil {
		return nil, err
	}

	var out []Record
	err = s.db.View(func(tx *buntdb.Tx) error {
		var inner error
		err := tx.AscendEqual(cleanEmailIndex, string(pivot), func(_, value string) bool {
			var rec Record
			if inner = json.Unmarshal([]byte(value), &rec); inner != nil {
				return false
			}
			out = append(out, rec)
			return true
		})
		if err != nil {
			return err
		}
		return inner
	})
	if err != nil {
		return nil, fmt.Errorf("problem scanning %s: %v", email, err)
	}
	return out, nil
}

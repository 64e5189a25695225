// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP__read(t *testing.T) {
	bs, err := read(bytes.NewReader(bytes.Repeat([]byte("a"), maxReadBytes+100)))
	require.NoError(t, err)
	assert.Len(t, bs, maxReadBytes)
}

func TestHTTP__writeResponse(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, writeResponse(w, created(&Account{ID: "id", Name: "name", Email: "e@mail.com", Password: "hash"})))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"id","name":"name","email":"e@mail.com","password":"hash","created_at":"0001-01-01T00:00:00Z"}`, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, writeResponse(w, badRequest(MissingParamError{"email"})))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"missing parameter: email"}`, w.Body.String())
}

func TestHTTP__encodeError(t *testing.T) {
	w := httptest.NewRecorder()
	encodeError(w, nil)
	assert.Equal(t, 0, w.Body.Len())

	w = httptest.NewRecorder()
	encodeError(w, errors.New("bad thing"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad thing"}`, w.Body.String())
}

func TestHTTP__internalError(t *testing.T) {
	w := httptest.NewRecorder()
	internalError(w, errors.New("secret detail"), "test")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

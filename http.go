// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"net/http"
)

const (
	// maxReadBytes is the number of bytes to read
	// from a request body. It's intended to be used
	// with an io.LimitReader
	maxReadBytes = 1 * 1024 * 1024
)

// read consumes an io.Reader (wrapping with io.LimitReader)
// and returns either the resulting bytes or a non-nil error.
func read(r io.Reader) ([]byte, error) {
	r = io.LimitReader(r, maxReadBytes)
	return io.ReadAll(r)
}

// encodeError JSON encodes the supplied error
//
// The HTTP status of "400 Bad Request" is written to the
// response.
func encodeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	writeResponse(w, badRequest(err))
}

// internalError logs err under component and writes a generic 500.
func internalError(w http.ResponseWriter, err error, component string) {
	internalServerErrors.Add(1)
	logger.Log(component, err)
	writeResponse(w, serverError())
}

// writeResponse JSON encodes resp.Body with resp.StatusCode. Errors are
// rendered as {"error": "..."}.
func writeResponse(w http.ResponseWriter, resp httpResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)

	if err, ok := resp.Body.(error); ok {
		return json.NewEncoder(w).Encode(map[string]interface{}{
			"error": err.Error(),
		})
	}
	return json.NewEncoder(w).Encode(resp.Body)
}

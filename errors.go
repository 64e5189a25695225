// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// MissingParamError is returned when a required signup field is empty.
type MissingParamError struct {
	Param string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Param)
}

// InvalidParamError is returned when a signup field is present but unusable.
type InvalidParamError struct {
	Param string
}

func (e InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", e.Param)
}

// ServerError hides whatever went wrong inside a collaborator. Details
// are logged, never written to the caller.
type ServerError struct{}

func (ServerError) Error() string {
	return "internal server error"
}

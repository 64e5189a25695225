// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type emailValidator interface {
	// isValid reports if email is a syntactically valid address.
	// A non-nil error means the check itself couldn't be performed.
	isValid(email string) (bool, error)
}

// validatorEmailValidator checks addresses with go-playground's "email" rule.
type validatorEmailValidator struct {
	validate *validator.Validate
}

func newEmailValidator() *validatorEmailValidator {
	return &validatorEmailValidator{
		validate: validator.New(),
	}
}

func (v *validatorEmailValidator) isValid(email string) (bool, error) {
	err := v.validate.Var(email, "required,email")
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, err
}

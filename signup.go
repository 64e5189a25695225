// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-kit/log"
	"github.com/gorilla/mux"
)

type signupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// httpResponse is what the signup controller produces. Body is either
// an *Account or an error.
type httpResponse struct {
	StatusCode int
	Body       interface{}
}

func badRequest(err error) httpResponse {
	return httpResponse{StatusCode: http.StatusBadRequest, Body: err}
}

func created(account *Account) httpResponse {
	return httpResponse{StatusCode: http.StatusCreated, Body: account}
}

func serverError() httpResponse {
	return httpResponse{StatusCode: http.StatusInternalServerError, Body: ServerError{}}
}

type signupController struct {
	logger log.Logger

	emailValidator emailValidator
	addAccount     createAccount
}

func newSignupController(logger log.Logger, validator emailValidator, addAccount createAccount) *signupController {
	return &signupController{
		logger:         logger,
		emailValidator: validator,
		addAccount:     addAccount,
	}
}

// handle validates req and creates the account. Validation failures are
// reported as 400s in field order, anything a collaborator returns (or
// panics with) becomes a 500.
func (c *signupController) handle(ctx context.Context, req signupRequest) (resp httpResponse) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Log("signup", "recovered panic", "error", fmt.Sprintf("%v", r))
			resp = serverError()
		}
	}()

	required := []struct {
		param, value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"password_confirmation", req.PasswordConfirmation},
	}
	for i := range required {
		if required[i].value == "" {
			return badRequest(MissingParamError{Param: required[i].param})
		}
	}

	if req.Password != req.PasswordConfirmation {
		return badRequest(InvalidParamError{Param: "password_confirmation"})
	}

	valid, err := c.emailValidator.isValid(req.Email)
	if err != nil {
		c.logger.Log("signup", "email validation failed", "error", err)
		return serverError()
	}
	if !valid {
		return badRequest(InvalidParamError{Param: "email"})
	}

	account, err := c.addAccount.handle(ctx, addAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.logger.Log("signup", "problem creating account", "error", err)
		return serverError()
	}
	if account == nil {
		c.logger.Log("signup", "nil account created")
		return serverError()
	}

	c.logger.Log("signup", fmt.Sprintf("created accountId=%s", account.ID))
	return created(account)
}

func addSignupRoutes(router *mux.Router, logger log.Logger, controller *signupController) {
	router.Methods("POST").Path("/accounts").HandlerFunc(signupRoute(logger, controller))
}

func signupRoute(logger log.Logger, controller *signupController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil {
			signups.With("status", "bad_request").Add(1)
			encodeError(w, errors.New("missing request body"))
			return
		}

		bs, err := read(r.Body)
		if err != nil {
			signups.With("status", "error").Add(1)
			internalError(w, err, "signup")
			return
		}

		var req signupRequest
		if err := json.Unmarshal(bs, &req); err != nil {
			signups.With("status", "bad_request").Add(1)
			encodeError(w, fmt.Errorf("problem reading request: %v", err))
			return
		}

		resp := controller.handle(r.Context(), req)
		switch resp.StatusCode {
		case http.StatusCreated:
			signups.With("status", "created").Add(1)
		case http.StatusBadRequest:
			signups.With("status", "bad_request").Add(1)
		default:
			signups.With("status", "error").Add(1)
			internalServerErrors.Add(1)
		}
		if err := writeResponse(w, resp); err != nil {
			logger.Log("signup", "problem writing response", "error", err)
		}
	}
}

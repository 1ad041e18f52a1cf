// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and reports
malformed input as validation errors rather than silently defaulting.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ekphrasis/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam parses a named URL parameter as an integer.

Returns:
  - int: The parsed value
  - error: VALIDATION_ERROR naming the parameter when it is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(Param(request, name)))
	if err != nil {
		return 0, (&validate.Validator{}).Custom(name, true, "Must be an integer").Err()
	}
	return value, nil
}

/*
QueryInt parses an optional integer query parameter.

An absent or empty parameter yields fallback; a present but non-integer value
is recorded on validator and fallback is returned so callers can keep
collecting errors.
*/
func QueryInt(request *http.Request, validator *validate.Validator, key string, fallback int) int {
	raw := strings.TrimSpace(request.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		validator.Custom(key, true, "Must be an integer")
		return fallback
	}
	return value
}

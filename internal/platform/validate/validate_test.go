// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/internal/platform/apperr"
	"github.com/taibuivan/ekphrasis/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "starry_night", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("name", tt.value)

			if tt.hasError {
				require.True(t, v.HasErrors())
				ae := apperr.As(v.Err())
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "name", ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Range covers both inclusive bounds of the limit window.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		value   int
		isValid bool
	}{
		{0, false},
		{1, true},
		{2000, true},
		{2001, false},
	}

	for _, tt := range tests {
		v := &validate.Validator{}
		v.Range("limit", tt.value, 1, 2000)
		assert.Equal(t, !tt.isValid, v.HasErrors(), "value %d", tt.value)
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Min("page", 0, 1).
		Range("limit", 5000, 1, 2000).
		Custom("page", true, "Must be an integer").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, 400, ae.HTTPStatus)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/pkg/convert"
)

func TestNullableString(t *testing.T) {
	assert.Nil(t, convert.NullableString(""))
	assert.Nil(t, convert.NullableString("   "))

	value := convert.NullableString("  Starry Night ")
	require.NotNil(t, value)
	assert.Equal(t, "Starry Night", *value)
}

/*
TestToIntPtr covers the year column: float formatted integers are accepted,
anything else becomes NULL.
*/
func TestToIntPtr(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"1889", intPtr(1889)},
		{"1889.0", intPtr(1889)},
		{" 1503.0 ", intPtr(1503)},
		{"c. 1500", nil},
		{"", nil},
		{"NaN", nil},
		{"1e20", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntPtr(tt.input))
		})
	}
}

func TestToFloat64(t *testing.T) {
	value, ok := convert.ToFloat64("0.0")
	assert.True(t, ok)
	assert.Zero(t, value)

	_, ok = convert.ToFloat64("inf")
	assert.False(t, ok)

	_, ok = convert.ToFloat64("high")
	assert.False(t, ok)
}

func TestToInt_Truncates(t *testing.T) {
	value, ok := convert.ToInt("17.9")
	assert.True(t, ok)
	assert.Equal(t, 17, value)
}

func intPtr(v int) *int { return &v }

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset

import (
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errInvalidText = errors.New("asset: text is not valid UTF-8")

// decodeText reads body as UTF-8, dropping a leading byte order mark.
// Any invalid sequence fails the whole read.
func decodeText(body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errInvalidText
	}

	text, _, err := transform.String(unicode.UTF8BOM.NewDecoder(), string(raw))
	if err != nil {
		return "", err
	}
	return text, nil
}

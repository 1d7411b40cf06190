// File: stringx.go
// Title: String Utilities
// Description: Blank checks, defaults, Unicode-aware truncation and reversal,
//              and byte/Base64 encoding helpers for strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"encoding/base64"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/utils/optional"
)

// ===============================
// Blank Handling
// ===============================

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// DefaultIfBlank returns fallback when s is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// ToOptional returns an empty value for blank s and s itself otherwise
func ToOptional(s string) optional.Value[string] {
	if IsBlank(s) {
		return optional.None[string]()
	}
	return optional.Of(s)
}

// ===============================
// Shaping
// ===============================

// Truncate shortens s to at most maxLen runes, ending in ellipsis when cut.
// Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// Reverse reverses s rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SplitLines splits s on \n and \r\n. A trailing newline does not produce an
// empty last line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return strings.Split(s, "\n")
}

// ===============================
// Encoding
// ===============================

// ToBytes returns the UTF-8 encoding of s
func ToBytes(s string) []byte {
	return []byte(s)
}

// FromBytes decodes UTF-8 data. Invalid data fails with CodeInvalidFormat.
func FromBytes(data []byte) (string, error) {
	if data == nil {
		return "", mdwerror.ArgumentMissing("data")
	}
	if !utf8.Valid(data) {
		return "", mdwerror.InvalidFormat(string(data), "utf-8 text", nil)
	}
	return string(data), nil
}

// ToBase64 encodes the UTF-8 bytes of s with standard padded Base64
func ToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes standard padded Base64. Blank input yields no value.
func FromBase64(s string) (optional.Value[[]byte], error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return optional.None[[]byte](), nil
	}

	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return optional.None[[]byte](), mdwerror.InvalidFormat(text, "base64", err)
	}
	return optional.Of(data), nil
}

// File: convertx.go
// Title: Parse-or-No-Value Conversions
// Description: Converts text into numbers, booleans, durations and GUIDs. Blank
//              input yields an empty optional.Value; malformed input fails with
//              CodeInvalidFormat and out-of-range numbers with CodeOverflow.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package convertx

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/utils/optional"
)

// ===============================
// Integer Conversions
// ===============================

// ToInt32 parses s as a base-10 int32
func ToInt32(s string) (optional.Value[int32], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[int32](), nil
	}

	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return optional.None[int32](), numError(text, "int32", err)
	}
	return optional.Of(int32(n)), nil
}

// ToInt64 parses s as a base-10 int64
func ToInt64(s string) (optional.Value[int64], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[int64](), nil
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return optional.None[int64](), numError(text, "int64", err)
	}
	return optional.Of(n), nil
}

// ToUint64 parses s as a base-10 uint64
func ToUint64(s string) (optional.Value[uint64], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[uint64](), nil
	}

	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return optional.None[uint64](), numError(text, "uint64", err)
	}
	return optional.Of(n), nil
}

// ===============================
// Other Conversions
// ===============================

// ToFloat64 parses s as a float64. Values beyond ±MaxFloat64 fail with CodeOverflow.
func ToFloat64(s string) (optional.Value[float64], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[float64](), nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return optional.None[float64](), numError(text, "float64", err)
	}
	return optional.Of(f), nil
}

// ToBool parses s with strconv.ParseBool rules (1, t, true, 0, f, false, ...)
func ToBool(s string) (optional.Value[bool], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[bool](), nil
	}

	b, err := strconv.ParseBool(text)
	if err != nil {
		return optional.None[bool](), mdwerror.InvalidFormat(text, "bool", err)
	}
	return optional.Of(b), nil
}

// ToDuration parses s with time.ParseDuration syntax ("1h30m", "250ms")
func ToDuration(s string) (optional.Value[time.Duration], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[time.Duration](), nil
	}

	d, err := time.ParseDuration(text)
	if err != nil {
		return optional.None[time.Duration](), mdwerror.InvalidFormat(text, "duration", err)
	}
	return optional.Of(d), nil
}

// ToGUID parses s as a UUID in any of the forms accepted by uuid.Parse
// (canonical, braced, urn:uuid: prefixed or 32 hex digits).
func ToGUID(s string) (optional.Value[uuid.UUID], error) {
	text, ok := prepare(s)
	if !ok {
		return optional.None[uuid.UUID](), nil
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return optional.None[uuid.UUID](), mdwerror.InvalidFormat(text, "guid", err)
	}
	return optional.Of(id), nil
}

// prepare trims s and reports whether anything is left to parse
func prepare(s string) (string, bool) {
	text := strings.TrimSpace(s)
	return text, text != ""
}

func numError(text, target string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return mdwerror.Overflow(text, target, err)
	}
	return mdwerror.InvalidFormat(text, target, err)
}

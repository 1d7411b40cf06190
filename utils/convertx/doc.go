// Package convertx provides parse-or-no-value conversions from text.
//
// Every function follows the same contract:
//
//   - blank input (empty or only whitespace) returns an empty optional.Value and a nil error
//   - surrounding whitespace is ignored
//   - malformed input fails with error code INVALID_FORMAT
//   - numbers outside the target type's range fail with error code OVERFLOW
//
// Example:
//
//	v, err := convertx.ToInt64("42")   // 42, nil
//	v, err = convertx.ToInt64("")      // <no value>, nil
//	v, err = convertx.ToInt64("abc")   // <no value>, INVALID_FORMAT
package convertx

// Package utils provides the field coercion helpers used at the boundary between
// raw LFS payload scalars and the typed fare model.
//
// It contains:
//   - Scalar converters (price, duration, offset timestamp, cabin class, flags, stops)
//   - Time formatting helpers used by the formatter package
//   - Shared layouts and constants
//
// Every converter takes the raw value as *string, where nil means the field was
// missing or JSON null. Converters never fail on malformed input, with the single
// exception of ParseOffsetTimestamp, which reports a present-but-invalid timestamp.
package utils

// Package stringx provides string helpers: blank checks, Unicode-aware
// truncation, line splitting, and UTF-8/Base64 encoding.
package stringx

// File: cryptox.go
// Title: Digest Helpers
// Description: Computes SHA-384 (and SHA-256/SHA-512) digests over byte slices
//              and streams. Streams are hashed incrementally and never buffered
//              in full.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with SHA-384
// - 2026-10-16 v0.2.0: Added Algorithm selection for the CLI

package cryptox

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	mdwerror "github.com/msto63/mdwx/core/error"
)

// Algorithm names a supported digest function
type Algorithm string

const (
	SHA256Algorithm Algorithm = "sha256"
	SHA384Algorithm Algorithm = "sha384"
	SHA512Algorithm Algorithm = "sha512"
)

// Size returns the digest length in bytes, or 0 for an unknown algorithm
func (a Algorithm) Size() int {
	switch a {
	case SHA256Algorithm:
		return sha256.Size
	case SHA384Algorithm:
		return sha512.Size384
	case SHA512Algorithm:
		return sha512.Size
	default:
		return 0
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA256Algorithm:
		return sha256.New(), nil
	case SHA384Algorithm:
		return sha512.New384(), nil
	case SHA512Algorithm:
		return sha512.New(), nil
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported digest algorithm %q", string(a))).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("algorithm", string(a))
	}
}

// ParseAlgorithm maps a name such as "SHA-384" or "sha384" to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	alg := Algorithm(normalized)
	if alg.Size() == 0 {
		return "", mdwerror.InvalidFormat(name, "digest algorithm", nil)
	}
	return alg, nil
}

// ===============================
// SHA-384
// ===============================

// SHA384 returns the SHA-384 digest of data. A nil slice is a missing
// argument; an empty non-nil slice hashes to the empty-input constant.
func SHA384(data []byte) ([]byte, error) {
	if data == nil {
		return nil, mdwerror.ArgumentMissing("data")
	}
	sum := sha512.Sum384(data)
	return sum[:], nil
}

// SHA384Reader returns the SHA-384 digest of everything read from r
func SHA384Reader(r io.Reader) ([]byte, error) {
	return Sum(SHA384Algorithm, r)
}

// SHA384Hex returns the lowercase hex SHA-384 digest of data
func SHA384Hex(data []byte) (string, error) {
	sum, err := SHA384(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// SHA384String returns the lowercase hex SHA-384 digest of the UTF-8 bytes of s
func SHA384String(s string) string {
	sum := sha512.Sum384([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ===============================
// Generic Digest
// ===============================

// Sum streams r through the digest function alg
func Sum(alg Algorithm, r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, mdwerror.ArgumentMissing("reader")
	}

	h, err := alg.newHash()
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(h, r); err != nil {
		return nil, mdwerror.Wrap(err, "error calculating digest").
			WithCode(mdwerror.CodeIOError).
			WithDetail("algorithm", string(alg))
	}
	return h.Sum(nil), nil
}

// SumHex is Sum with lowercase hex output
func SumHex(alg Algorithm, r io.Reader) (string, error) {
	sum, err := Sum(alg, r)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

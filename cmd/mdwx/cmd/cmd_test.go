package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/core/version"
)

const (
	sha384abc = "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"
	sha256abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the command tree with an isolated config file
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, "[general]\nlog_level = \"error\"\n", stdin, args...)
}

func runWithConfig(t *testing.T, config, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"MDWX_LOG_LEVEL", "MDWX_LOG_FORMAT", "MDWX_CHUNK_SIZE", "MDWX_HASH_ALGORITHM"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", writeTemp(t, "mdwx.toml", config)}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v"+version.Version)
	assert.Contains(t, out, "Git Commit: "+version.GitCommit)
}

func TestHashCmd(t *testing.T) {
	t.Run("stdin uses the configured algorithm", func(t *testing.T) {
		out, err := run(t, "abc", "hash")
		require.NoError(t, err)
		assert.Equal(t, sha384abc+"  -\n", out)
	})

	t.Run("algorithm flag", func(t *testing.T) {
		out, err := run(t, "abc", "hash", "--algorithm", "SHA-256")
		require.NoError(t, err)
		assert.Equal(t, sha256abc+"  -\n", out)
	})

	t.Run("files keep argument order", func(t *testing.T) {
		a := writeTemp(t, "a.txt", "abc")
		b := writeTemp(t, "b.txt", "abc")

		out, err := run(t, "", "hash", "-a", "sha256", a, b)
		require.NoError(t, err)
		assert.Equal(t, sha256abc+"  "+a+"\n"+sha256abc+"  "+b+"\n", out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "hash", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot open file")
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAggregate))
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeIOError), "member codes stay visible")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := run(t, "abc", "hash", "-a", "md5")
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	})
}

func TestShuffleCmd(t *testing.T) {
	input := "one\ntwo\nthree\nfour\nfive\n"
	want := []string{"five", "four", "one", "three", "two"}

	for _, mode := range [][]string{nil, {"--fair"}, {"--randomize"}} {
		name := "naive"
		if mode != nil {
			name = mode[0]
		}
		t.Run(name, func(t *testing.T) {
			args := append([]string{"shuffle", "--seed", "7"}, mode...)

			first, err := run(t, input, args...)
			require.NoError(t, err)
			second, err := run(t, input, args...)
			require.NoError(t, err)
			assert.Equal(t, first, second, "same seed gives same order")

			lines := strings.Fields(first)
			slices.Sort(lines)
			assert.Equal(t, want, lines)
		})
	}

	t.Run("file argument", func(t *testing.T) {
		out, err := run(t, "", "shuffle", writeTemp(t, "lines.txt", "x\n"))
		require.NoError(t, err)
		assert.Equal(t, "x\n", out)
	})

	t.Run("empty input", func(t *testing.T) {
		out, err := run(t, "", "shuffle")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("fair and randomize exclude each other", func(t *testing.T) {
		_, err := run(t, input, "shuffle", "--fair", "--randomize")
		assert.Error(t, err)
	})
}

func TestChunkCmd(t *testing.T) {
	path := writeTemp(t, "data.bin", "0123456789")

	t.Run("size flag", func(t *testing.T) {
		out, err := run(t, "", "chunk", path, "--size", "4")
		require.NoError(t, err)
		assert.Contains(t, out, "Block 0: 4 Bytes")
		assert.Contains(t, out, "Block 1: 4 Bytes")
		assert.Contains(t, out, "Block 2: 2 Bytes")
		assert.Contains(t, out, "3 Blöcke, 10 Bytes")
	})

	t.Run("size from config", func(t *testing.T) {
		out, err := runWithConfig(t, "[io]\nchunk_size = 5\n[general]\nlog_level = \"error\"\n", "", "chunk", path)
		require.NoError(t, err)
		assert.Contains(t, out, "2 Blöcke, 10 Bytes")
	})

	t.Run("digest", func(t *testing.T) {
		out, err := run(t, "", "chunk", writeTemp(t, "abc.txt", "abc"), "--digest")
		require.NoError(t, err)
		assert.Contains(t, out, "Block 0: 3 Bytes  "+sha384abc)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := run(t, "", "chunk", path, "--size", "0")
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))
	})
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		code     mdwerror.Code
	}{
		{"int64 trims", []string{"int64", " 42 "}, "42\n", ""},
		{"negative int64", []string{"int64", "-5"}, "-5\n", ""},
		{"negative float", []string{"float", "-1.5"}, "-1.5\n", ""},
		{"negative overflow", []string{"int32", "-99999999999"}, "", mdwerror.CodeOverflow},
		{"blank is no value", []string{"bool", "  "}, "<no value>\n", ""},
		{"duration", []string{"duration", "90s"}, "1m30s\n", ""},
		{"guid", []string{"GUID", "F47AC10B-58CC-4372-A567-0E02B2C3D479"}, "f47ac10b-58cc-4372-a567-0e02b2c3d479\n", ""},
		{"overflow", []string{"int32", "99999999999"}, "", mdwerror.CodeOverflow},
		{"malformed", []string{"float", "abc"}, "", mdwerror.CodeInvalidFormat},
		{"unknown type", []string{"complex", "1"}, "", mdwerror.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"convert"}, tt.args...)...)
			if tt.code != "" {
				assert.True(t, mdwerror.HasCode(err, tt.code), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := runWithConfig(t, "[io]\nchunk_size = -5\n", "", "chunk", writeTemp(t, "x", "x"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

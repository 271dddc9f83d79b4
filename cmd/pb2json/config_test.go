package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb2json "github.com/traceflight/protobuf-2-json"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pb2json.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadOptionsFile(t *testing.T) {
	path := writeConfig(t, `
encoding = "bytearray"
pretty = true
max_depth = 16
`)

	opts, err := loadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, pb2json.EncodingByteArray, opts.encoding)
	assert.True(t, opts.pretty)
	assert.Equal(t, 16, opts.maxDepth)
}

func TestLoadOptionsFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `pretty = true`)

	opts, err := loadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, pb2json.EncodingAuto, opts.encoding)
	assert.True(t, opts.pretty)
	assert.Equal(t, 0, opts.maxDepth, "unset max_depth leaves the library default in force")
}

func TestLoadOptionsFile_BadEncoding(t *testing.T) {
	path := writeConfig(t, `encoding = "rot13"`)

	_, err := loadOptionsFile(path)
	assert.Error(t, err)
}

func TestLoadOptionsFile_NegativeDepth(t *testing.T) {
	path := writeConfig(t, `max_depth = -3`)

	_, err := loadOptionsFile(path)
	assert.Error(t, err)
}

func TestLoadOptionsFile_Missing(t *testing.T) {
	_, err := loadOptionsFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

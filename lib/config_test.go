package lib

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(path.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	file := path.Join(t.TempDir(), "calc.toml")
	err := os.WriteFile(file, []byte("prompt = \">> \"\nlog_level = \"debug\"\n"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(file)
	require.NoError(t, err)
	require.Equal(t, ">> ", config.Prompt)
	require.Equal(t, "debug", config.LogLevel)
}

// Keys the file leaves out keep their defaults.
func TestLoadConfigPartial(t *testing.T) {
	file := path.Join(t.TempDir(), "calc.toml")
	err := os.WriteFile(file, []byte("log_level = \"debug\"\n"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(file)
	require.NoError(t, err)
	require.Equal(t, "calc> ", config.Prompt)
	require.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigBadToml(t *testing.T) {
	file := path.Join(t.TempDir(), "calc.toml")
	err := os.WriteFile(file, []byte("prompt = \n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(file)
	require.Error(t, err)
}

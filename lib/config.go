package lib

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Prompt   string `toml:"prompt"`
	LogLevel string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:   "calc> ",
		LogLevel: "warn",
	}
}

// LoadConfig reads a TOML config file, filling anything the file leaves out
// from the defaults. A missing file just means defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Package config wires viper-backed settings: config file, VOCTRAIN_*
// environment variables, and flag bindings done by the cmd layer.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Keys understood by the config file and environment.
const (
	KeyVocabDir = "vocab_dir"
	KeyStateDB  = "state_db"
)

// Init initializes viper. With an explicit cfgFile that file is used;
// otherwise config.yaml is searched in $XDG_CONFIG_HOME/voctrain,
// ~/.config/voctrain, and the working directory. A missing config file
// is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			if home, err := os.UserHomeDir(); err == nil {
				configHome = filepath.Join(home, ".config")
			}
		}
		if configHome != "" {
			viper.AddConfigPath(filepath.Join(configHome, "voctrain"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VOCTRAIN")
	viper.AutomaticEnv()

	viper.SetDefault(KeyVocabDir, ".")

	if err := viper.ReadInConfig(); err != nil {
		// No config file at all is fine; a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// VocabDir returns the directory scanned for *_voc.txt files.
func VocabDir() string {
	return viper.GetString(KeyVocabDir)
}

// StateDB returns the configured state database path, or empty when
// unset (callers fall back to the XDG default).
func StateDB() string {
	return viper.GetString(KeyStateDB)
}

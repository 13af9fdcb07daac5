package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config keys shared by the config file, YAGI_ environment variables and flags.
const (
	keyUnits    = "units"
	keyMounting = "mounting"
	keyFormat   = "format"
	keyLogLevel = "log-level"
	keyCallsign = "callsign"
	keyColor    = "color"
)

// newConfig returns a viper instance with the command's defaults. The file
// itself is read later by loadConfig, once --config is known.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("YAGI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyUnits, "mm")
	v.SetDefault(keyMounting, "off-boom")
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyCallsign, "N/A")
	v.SetDefault(keyColor, true)
	return v
}

// loadConfig reads yagicalc.(yaml|json|toml) from $HOME/.config/yagicalc or
// the working directory, or the file named by --config. A missing file in
// the search path is not an error; a missing --config file is.
func loadConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}
	v.SetConfigName("yagicalc")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "yagicalc"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

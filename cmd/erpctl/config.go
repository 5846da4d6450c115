// Config loading for erpctl.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configName = ".erpctl"
	configType = "yaml"

	cfgKeyBaseURL = "base_url"
	cfgKeyToken   = "token"
)

// loadConfig reads the config file and wires environment overrides
// (ERPCTL_BASE_URL, ERPCTL_TOKEN). A missing config file is not an error;
// flags and environment may carry everything.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("ERPCTL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.erpctl")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

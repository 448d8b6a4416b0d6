package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// LoadConfig reads the configuration file if one is present and installs
// the defaults for everything it does not set.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/scpd/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("Config file not found, using defaults")
		} else {
			log.Panic().Err(err).Msg("Fatal error reading config file")
		}
	}
	SetDefaultConfig()
}

func SetDefaultConfig() {
	// Fetch
	viper.SetDefault("fetch.timeout", 30)
	viper.SetDefault("fetch.user_agent", "")
	viper.SetDefault("fetch.headers", map[string]string{})
}

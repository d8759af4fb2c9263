package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables, e.g. CHART_HOUSE_SYSTEM.
const EnvPrefix = "CHART"

// Config holds defaults for the chart CLI. Computation constants
// (obliquity, polar limit) are not configurable.
type Config struct {
	HouseSystem    string
	RelocationMode string
	LogLevel       string
	LogFormat      string

	// DotEnvLoaded is false when no .env file was found.
	DotEnvLoaded bool
}

// Load reads an optional .env file, then resolves settings from CHART_*
// environment variables and an optional config file, falling back to defaults.
func Load(configFile string) (Config, error) {
	loaded := godotenv.Load() == nil

	v := viper.New()
	v.SetDefault("house_system", "placidus")
	v.SetDefault("relocation_mode", "birthplace")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("load config %q: %w", configFile, err)
		}
	}

	return Config{
		HouseSystem:    v.GetString("house_system"),
		RelocationMode: v.GetString("relocation_mode"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		DotEnvLoaded:   loaded,
	}, nil
}

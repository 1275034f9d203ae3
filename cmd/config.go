package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/syntoxine/doubloon/internal/logger"
	tablerender "github.com/syntoxine/doubloon/internal/table-render"
	"github.com/syntoxine/doubloon/internal/utils"
)

const (
	configName = "doubloon"
	envPrefix  = "DOUBLOON"
)

// newConfig returns a viper instance holding the defaults
func newConfig() *viper.Viper {
	v := viper.New()

	v.SetDefault("logLevel", logger.InfoLevel)
	v.SetDefault("exclude", []string{})
	v.SetDefault("maxTableWidth", tablerender.DefaultMaxWidth)
	v.SetDefault("output", OutputTable)

	// DOUBLOON_LOGLEVEL, DOUBLOON_OUTPUT, ...
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return v
}

// loadConfig reads the config file named by --config, or doubloon.yaml from dir if present
func (a *app) loadConfig(dir string) error {
	a.v.SetFs(a.fsys)

	if a.flags.cfgFile != "" {
		// Use config file from the flag.
		a.v.SetConfigFile(a.flags.cfgFile)
	} else {
		a.v.AddConfigPath(dir)
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && a.flags.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// excludePatterns merges configured and command line patterns and validates them
func (a *app) excludePatterns() ([]string, error) {
	patterns := append([]string{}, a.v.GetStringSlice("exclude")...)
	patterns = append(patterns, a.flags.exclude...)

	if err := utils.ValidatePatterns(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

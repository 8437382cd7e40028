package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "./config.yml"
	DefaultEnvFile    = "./config.env"
	EnvPrefix         = "DBEN"
	DefaultLogFile    = "./logs/app.log"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit    string        `yaml:"git_commit" envconfig:"DBEN_GIT_COMMIT"`
	GitTag       string        `yaml:"git_tag" envconfig:"DBEN_GIT_TAG"`
	BuildTime    string        `yaml:"build_time" envconfig:"DBEN_BUILD_TIME"`
	IsProduction bool          `yaml:"is_production" envconfig:"DBEN_IS_PRODUCTION"`
	LogLevel     zapcore.Level `yaml:"log_level" envconfig:"DBEN_LOG_LEVEL"`
	LogFile      string        `yaml:"log_file" envconfig:"DBEN_LOG_FILE"`
	Catalog      CatalogConfig `yaml:"catalog"`
}

type CatalogConfig struct {
	FilePath     string `yaml:"filepath" envconfig:"DBEN_CATALOG_FILE_PATH"`
	OutputFormat string `yaml:"output_format" envconfig:"DBEN_CATALOG_OUTPUT_FORMAT"`
	IDPrefix     string `yaml:"id_prefix" envconfig:"DBEN_CATALOG_ID_PREFIX"`
	Strict       bool   `yaml:"strict" envconfig:"DBEN_CATALOG_STRICT"`
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and overrides the matching config values.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig setup defaults values for non provided parameters
// and configures build tags values to be used if provided.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.LogFile) == 0 {
		config.LogFile = DefaultLogFile
	}

	if len(config.Catalog.OutputFormat) == 0 {
		config.Catalog.OutputFormat = FormatText
	}

	if len(config.Catalog.IDPrefix) == 0 {
		config.Catalog.IDPrefix = EntryIDPrefix
	}

	if len(config.Catalog.FilePath) == 0 {
		return errors.New("make sure to set a valid catalog file path in configuration file")
	}

	switch config.Catalog.OutputFormat {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, config.Catalog.OutputFormat)
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(configFile, envFile, gitCommit, gitTag, buildTime string) (*Config, error) {
	// Setup the yaml configuration from file.
	config, err := LoadConfigFile(configFile)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration. The env file is optional.
	err = godotenv.Load(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `DBEN`.
	err = LoadConfigEnvs(EnvPrefix, config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}

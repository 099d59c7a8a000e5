package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Source kinds selectable per backend
const (
	SourceFixture = "fixture"
	SourceJira    = "jira"
	SourceGitLab  = "gitlab"
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatConsole, LogFormatJSON:
		return true
	default:
		return false
	}
}

var ticketPrefixPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Config represents the application configuration
type Config struct {
	// Logging configuration
	Logging struct {
		Level  LogLevel  `mapstructure:"level"`
		Format LogFormat `mapstructure:"format"`
	} `mapstructure:"logging"`

	// Linker configuration
	Linker struct {
		TicketPrefix string `mapstructure:"ticket_prefix"`
	} `mapstructure:"linker"`

	// Backend selection per source
	Sources struct {
		Tickets       string `mapstructure:"tickets"`
		MergeRequests string `mapstructure:"merge_requests"`
	} `mapstructure:"sources"`

	// Fixture configuration
	Fixture struct {
		DataFile string `mapstructure:"data_file"`
	} `mapstructure:"fixture"`

	// Jira configuration
	Jira struct {
		BaseURL    string `mapstructure:"base_url"`
		APIToken   string `mapstructure:"api_token"`
		ProjectKey string `mapstructure:"project_key"`
	} `mapstructure:"jira"`

	// GitLab configuration
	GitLab struct {
		BaseURL   string `mapstructure:"base_url"`
		APIToken  string `mapstructure:"api_token"`
		ProjectID string `mapstructure:"project_id"`
	} `mapstructure:"gitlab"`
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// LINKER_-prefixed environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("linker.ticket_prefix", "MBUX")
	v.SetDefault("sources.tickets", SourceFixture)
	v.SetDefault("sources.merge_requests", SourceFixture)
	// Empty defaults register the remaining keys so AutomaticEnv sees them
	// during Unmarshal.
	v.SetDefault("fixture.data_file", "")
	v.SetDefault("jira.base_url", "")
	v.SetDefault("jira.api_token", "")
	v.SetDefault("jira.project_key", "")
	v.SetDefault("gitlab.base_url", "")
	v.SetDefault("gitlab.api_token", "")
	v.SetDefault("gitlab.project_id", "")

	v.SetEnvPrefix("LINKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config.Logging.Level = LogLevel(strings.ToLower(config.Logging.Level.String()))
	config.Logging.Format = LogFormat(strings.ToLower(config.Logging.Format.String()))
	config.Sources.Tickets = strings.ToLower(config.Sources.Tickets)
	config.Sources.MergeRequests = strings.ToLower(config.Sources.MergeRequests)

	if err := config.validateLogging(); err != nil {
		return nil, err
	}
	if err := config.validateLinker(); err != nil {
		return nil, err
	}
	if err := config.validateSources(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateLogging ensures logging configuration is valid
func (c *Config) validateLogging() error {
	if !c.Logging.Level.IsValid() {
		return fmt.Errorf("invalid log level: %s. Valid options are: debug, info, warn, error", c.Logging.Level)
	}
	if !c.Logging.Format.IsValid() {
		return fmt.Errorf("invalid log format: %s. Valid options are: console, json", c.Logging.Format)
	}
	return nil
}

// validateLinker ensures the ticket key prefix is usable in the extraction pattern
func (c *Config) validateLinker() error {
	if !ticketPrefixPattern.MatchString(c.Linker.TicketPrefix) {
		return fmt.Errorf("invalid ticket prefix: %q. Must be one or more letters", c.Linker.TicketPrefix)
	}
	return nil
}

// validateSources ensures each selected backend is known and fully configured
func (c *Config) validateSources() error {
	switch c.Sources.Tickets {
	case SourceFixture:
	case SourceJira:
		if c.Jira.BaseURL == "" || c.Jira.APIToken == "" || c.Jira.ProjectKey == "" {
			return errors.New("jira.base_url, jira.api_token and jira.project_key are required when sources.tickets is 'jira'")
		}
	default:
		return fmt.Errorf("invalid ticket source: %s. Valid options are: fixture, jira", c.Sources.Tickets)
	}

	switch c.Sources.MergeRequests {
	case SourceFixture:
	case SourceGitLab:
		if c.GitLab.APIToken == "" || c.GitLab.ProjectID == "" {
			return errors.New("gitlab.api_token and gitlab.project_id are required when sources.merge_requests is 'gitlab'")
		}
	default:
		return fmt.Errorf("invalid merge request source: %s. Valid options are: fixture, gitlab", c.Sources.MergeRequests)
	}

	return nil
}

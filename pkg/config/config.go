package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultWorkatoURL     = "https://apid.kuokgroup.com.sg/sw-api-test-v1/sw-rec-dev-api-test"
	DefaultUiPathFolders  = "https://cloud.uipath.com/kslcorporateservicesptelted/Kuok_UAT/orchestrator_/odata/Folders"
	WorkatoTokenEnv       = "WORKATO_API_TOKEN"
	UiPathTokenEnv        = "UIPATH_API_TOKEN"
	defaultPort           = 7071
	defaultMetricsPort    = 9090
	defaultLogFile        = "logs/bridge.log"
	defaultConfigFileName = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Workato  WorkatoConfig  `mapstructure:"workato"`
	UiPath   UiPathConfig   `mapstructure:"uipath"`
	Outbound OutboundConfig `mapstructure:"outbound"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// WorkatoConfig points at the workflow-automation recipe endpoint.
type WorkatoConfig struct {
	URL      string `mapstructure:"url"`
	APIToken string `mapstructure:"api_token"`
}

// UiPathConfig points at the orchestrator Folders collection.
type UiPathConfig struct {
	FoldersURL string `mapstructure:"folders_url"`
	APIToken   string `mapstructure:"api_token"`
}

// OutboundConfig tunes the shared outbound client. A zero Timeout leaves
// outbound calls unbounded. Zero pool and body limits keep the client
// defaults.
type OutboundConfig struct {
	Timeout            time.Duration `mapstructure:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	UserAgent          string        `mapstructure:"user_agent"`
	MaxConnsPerHost    int           `mapstructure:"max_conns_per_host"`
	MaxResponseBytes   int           `mapstructure:"max_response_bytes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load builds the process configuration from an optional config.yaml found
// in configPath and from the environment. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := loadConfigFile(v, configPath, defaultConfigFileName); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}
	return nil
}

func bindEnv(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// credentials keep the variable names the deployment already uses
	if err := v.BindEnv("workato.api_token", WorkatoTokenEnv); err != nil {
		return fmt.Errorf("failed to bind %s: %w", WorkatoTokenEnv, err)
	}
	if err := v.BindEnv("uipath.api_token", UiPathTokenEnv); err != nil {
		return fmt.Errorf("failed to bind %s: %w", UiPathTokenEnv, err)
	}
	if err := v.BindEnv("log.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	return nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.metrics_port", defaultMetricsPort)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("workato.url", DefaultWorkatoURL)
	v.SetDefault("workato.api_token", "")
	v.SetDefault("uipath.folders_url", DefaultUiPathFolders)
	v.SetDefault("uipath.api_token", "")
	v.SetDefault("outbound.timeout", time.Duration(0))
	v.SetDefault("outbound.insecure_skip_verify", false)
	v.SetDefault("outbound.user_agent", "")
	v.SetDefault("outbound.max_conns_per_host", 0)
	v.SetDefault("outbound.max_response_bytes", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile)
}

// MissingCredentials lists the credential variables that resolved to an
// empty value. Calls are still forwarded with the empty token.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.Workato.APIToken == "" {
		missing = append(missing, WorkatoTokenEnv)
	}
	if c.UiPath.APIToken == "" {
		missing = append(missing, UiPathTokenEnv)
	}
	return missing
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/spf13/viper"
)

// Config represents the installer configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Install InstallConfig `mapstructure:"install"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	PackageDir string `mapstructure:"package_dir"`
	StagingDir string `mapstructure:"staging_dir"`
	LogFile    string `mapstructure:"log_file"`
}

// InstallConfig contains install-time settings
type InstallConfig struct {
	ReleasesURL string `mapstructure:"releases_url"`
	DocsURL     string `mapstructure:"docs_url"`
	Progress    bool   `mapstructure:"progress"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

const (
	configName = "claude-gate-install"
	envPrefix  = "CLAUDE_GATE_INSTALL"

	DefaultReleasesURL = "https://github.com/ml0-1337/claude-gate/releases"
	DefaultDocsURL     = "https://github.com/ml0-1337/claude-gate#installation"
)

// Load loads configuration from file and environment. packageDir overrides
// paths.package_dir when non-empty.
func Load(packageDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")

	if packageDir != "" {
		v.AddConfigPath(packageDir)
	}
	v.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "claude-gate"))
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if packageDir != "" {
		cfg.Paths.PackageDir = packageDir
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// npm runs lifecycle hooks from the package root.
	v.SetDefault("paths.package_dir", ".")
	v.SetDefault("paths.staging_dir", "")
	v.SetDefault("paths.log_file", "")

	v.SetDefault("install.releases_url", DefaultReleasesURL)
	v.SetDefault("install.docs_url", DefaultDocsURL)
	v.SetDefault("install.progress", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.color", "auto")
}

// finalize expands paths and derives the staging dir from the package dir.
func (c *Config) finalize() error {
	c.Paths.PackageDir = expandPath(c.Paths.PackageDir)
	if c.Paths.PackageDir == "" {
		c.Paths.PackageDir = "."
	}
	abs, err := filepath.Abs(c.Paths.PackageDir)
	if err != nil {
		return fmt.Errorf("resolve package dir: %w", err)
	}
	c.Paths.PackageDir = abs

	c.Paths.StagingDir = expandPath(c.Paths.StagingDir)
	switch {
	case c.Paths.StagingDir == "":
		c.Paths.StagingDir = filepath.Join(c.Paths.PackageDir, core.StagingDirName)
	case !filepath.IsAbs(c.Paths.StagingDir):
		// Wrappers embed this path, so it must not depend on the cwd.
		c.Paths.StagingDir = filepath.Join(c.Paths.PackageDir, c.Paths.StagingDir)
	}
	if c.Paths.StagingDir, err = filepath.Abs(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("resolve staging dir: %w", err)
	}
	c.Paths.LogFile = expandPath(c.Paths.LogFile)

	return nil
}

// Default returns the default configuration rooted at packageDir, without
// reading files or the environment.
func Default(packageDir string) *Config {
	cfg := &Config{
		Paths: PathsConfig{PackageDir: packageDir},
		Install: InstallConfig{
			ReleasesURL: DefaultReleasesURL,
			DocsURL:     DefaultDocsURL,
		},
		Logging: LoggingConfig{Level: "warn", Color: "auto"},
	}
	// Only filepath.Abs can fail here, and only when cwd is gone.
	_ = cfg.finalize()
	return cfg
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

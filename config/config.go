package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/gridnav/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists the file names searched in every directory, in order.
var configNames = []string{
	"gridnav.yml",
	"gridnav.yaml",
	"gridnav.toml",
	".gridnav.yml",
	".gridnav.yaml",
	".gridnav.toml",
}

// Load reads and parses a gridnav configuration file. The format is chosen
// from the file extension; anything that is not .toml is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := parse(data, isTOML(path))
	if err != nil {
		return nil, parseError(err, "failed to parse config file").WithDetail("path", path)
	}

	return finish(cfg)
}

// LoadDefault finds and loads the configuration starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging:
// 1. Global config ($XDG_CONFIG_HOME/gridnav/gridnav.yml) - base layer
// 2. Project config (gridnav.yml found from startDir upward) - overrides global
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	var finalConfig *Config

	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := readRaw(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to read global configuration, continuing without it")
			} else {
				finalConfig = globalConfig
			}
		}
	}

	logger.WithField("path", projectPath).Debug("Loading project configuration")
	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, parseError(err, "failed to parse project config").WithDetail("path", projectPath)
	}

	if finalConfig == nil {
		finalConfig = projectConfig
	} else {
		logger.Debug("Merging project configuration over global configuration")
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	cfg, err := finish(finalConfig)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(cfg); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration found from startDir, falling back to
// defaults when no file exists. Any other error is returned.
func LoadOrDefault(startDir string) (*Config, error) {
	cfg, err := LoadFrom(startDir)
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFromBytes parses YAML configuration from byte array
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parse(data, false)
	if err != nil {
		return nil, parseError(err, "failed to parse YAML configuration")
	}
	return finish(cfg)
}

// LoadFromTOML parses TOML configuration from byte array
func LoadFromTOML(data []byte) (*Config, error) {
	cfg, err := parse(data, true)
	if err != nil {
		return nil, parseError(err, "failed to parse TOML configuration")
	}
	return finish(cfg)
}

// parseError keeps structured errors from parse and wraps everything else as
// an invalid configuration.
func parseError(err error, message string) *errors.GridError {
	if gridErr, ok := err.(*errors.GridError); ok {
		return gridErr
	}
	return errors.Wrap(err, errors.ErrCodeConfigInvalid, message)
}

// finish applies defaults and runs semantic validation.
func finish(cfg *Config) (*Config, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, isTOML(path))
}

// parse expands environment variables, validates the raw document against
// the schema and decodes it.
func parse(data []byte, asTOML bool) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	unmarshal := yaml.Unmarshal
	if asTOML {
		unmarshal = toml.Unmarshal
	}

	var raw map[string]interface{}
	if err := unmarshal(expanded, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	var cfg Config
	if err := unmarshal(expanded, &cfg); err != nil {
		return nil, err
	}
	if !asTOML {
		return &cfg, nil
	}

	// go-toml has no inline catch-all, so collect unknown tables by hand.
	for key, value := range raw {
		if knownKeys[key] {
			continue
		}
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]interface{})
		}
		cfg.Extensions[key] = value
	}

	return &cfg, nil
}

var knownKeys = map[string]bool{
	"version":     true,
	"theme":       true,
	"grid":        true,
	"keybindings": true,
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// FindConfigFile searches for gridnav configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory ($XDG_CONFIG_HOME/gridnav/)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the first existing global config file, or the
// default YAML location when none exists yet.
func getXDGConfigPath() string {
	var dir string
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		dir = filepath.Join(xdgConfig, "gridnav")
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(homeDir, ".config", "gridnav")
	} else {
		return ""
	}

	for _, name := range []string{"gridnav.yml", "gridnav.yaml", "gridnav.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, "gridnav.yml")
}

package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".devconnect"
	configFile      = "config.toml"
	credentialsDir  = "credentials"
	envPrefix       = "DEVCONNECT"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	DefaultBaseURL = "http://localhost:8000/api/"
	DefaultTimeout = 30 * time.Second
)

const (
	keyVersion           = "version"
	keyAPIBaseURL        = "api.base_url"
	keyAPITimeout        = "api.timeout"
	keyAPIAllowInsecure  = "api.allow_insecure_http"
	keyHTTPUserAgent     = "http.user_agent"
	keyCredentialBackend = "credentials.backend"
	keyCredentialDir     = "credentials.dir"
	keyCredentialProfile = "credentials.profile"
	keyLogLevel          = "log.level"
	keyLogFormat         = "log.format"
)

// Settings is the resolved client configuration: file values overlaid by
// DEVCONNECT_* environment variables, overlaid on defaults.
type Settings struct {
	API struct {
		BaseURL           string        `validate:"required,url"`
		Timeout           time.Duration `validate:"gt=0"`
		AllowInsecureHTTP bool
	}
	HTTP struct {
		UserAgent string
	}
	Credentials struct {
		Backend string `validate:"oneof=chain file pass"`
		Dir     string `validate:"required"`
		Profile string `validate:"required,alphanum,max=64"`
	}
	Log struct {
		Level  string `validate:"oneof=trace debug info warn error disabled"`
		Format string `validate:"oneof=console json"`
	}

	// Path is the config file the settings were read from, or the default
	// location when no file exists yet.
	Path string `validate:"-"`
}

var settingsValidator = validator.New()

// DefaultPath is ~/.devconnect/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// Load reads settings through cfg. An explicit path wins over the default
// search location; a missing file is not an error.
func Load(cfg *viper.Viper, path string) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	if path != "" {
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(root)
		path = filepath.Join(root, configFile)
	}

	cfg.SetDefault(keyVersion, currentSchemaVersion)
	cfg.SetDefault(keyAPIBaseURL, DefaultBaseURL)
	cfg.SetDefault(keyAPITimeout, DefaultTimeout)
	cfg.SetDefault(keyAPIAllowInsecure, false)
	cfg.SetDefault(keyHTTPUserAgent, "")
	cfg.SetDefault(keyCredentialBackend, "chain")
	cfg.SetDefault(keyCredentialDir, filepath.Join(root, credentialsDir))
	cfg.SetDefault(keyCredentialProfile, "default")
	cfg.SetDefault(keyLogLevel, "warn")
	cfg.SetDefault(keyLogFormat, "console")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}
	if used := cfg.ConfigFileUsed(); used != "" {
		path = used
	}

	if err := validateVersion(cfg.GetInt(keyVersion)); err != nil {
		return Settings{}, err
	}

	var settings Settings
	settings.API.BaseURL = strings.TrimSpace(cfg.GetString(keyAPIBaseURL))
	settings.API.Timeout = cfg.GetDuration(keyAPITimeout)
	settings.API.AllowInsecureHTTP = cfg.GetBool(keyAPIAllowInsecure)
	settings.HTTP.UserAgent = cfg.GetString(keyHTTPUserAgent)
	settings.Credentials.Backend = strings.ToLower(cfg.GetString(keyCredentialBackend))
	settings.Credentials.Dir = expandHome(cfg.GetString(keyCredentialDir), homeDir)
	settings.Credentials.Profile = cfg.GetString(keyCredentialProfile)
	settings.Log.Level = strings.ToLower(cfg.GetString(keyLogLevel))
	settings.Log.Format = strings.ToLower(cfg.GetString(keyLogFormat))
	settings.Path = path

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			return fmt.Errorf("invalid config %s: failed %q check", settingKey(first.StructNamespace()), first.Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

// Save writes settings to path atomically. It refuses to replace an existing
// file unless overwrite is set.
func Save(path string, settings Settings, overwrite bool) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

// Encode renders settings in the on-disk format.
func Encode(settings Settings) ([]byte, error) {
	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// settingKey maps "Settings.API.BaseURL" to "api.base_url".
func settingKey(namespace string) string {
	switch strings.TrimPrefix(namespace, "Settings.") {
	case "API.BaseURL":
		return keyAPIBaseURL
	case "API.Timeout":
		return keyAPITimeout
	case "Credentials.Backend":
		return keyCredentialBackend
	case "Credentials.Dir":
		return keyCredentialDir
	case "Credentials.Profile":
		return keyCredentialProfile
	case "Log.Level":
		return keyLogLevel
	case "Log.Format":
		return keyLogFormat
	default:
		return namespace
	}
}

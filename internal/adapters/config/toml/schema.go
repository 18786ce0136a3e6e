package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int               `toml:"version"`
	API         apiSchema         `toml:"api"`
	HTTP        httpSchema        `toml:"http"`
	Credentials credentialsSchema `toml:"credentials"`
	Log         logSchema         `toml:"log"`
}

type apiSchema struct {
	BaseURL           string `toml:"base_url"`
	Timeout           string `toml:"timeout"`
	AllowInsecureHTTP bool   `toml:"allow_insecure_http"`
}

type httpSchema struct {
	UserAgent string `toml:"user_agent,omitempty"`
}

type credentialsSchema struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Profile string `toml:"profile"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings Settings) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		API: apiSchema{
			BaseURL:           settings.API.BaseURL,
			Timeout:           settings.API.Timeout.String(),
			AllowInsecureHTTP: settings.API.AllowInsecureHTTP,
		},
		HTTP: httpSchema{UserAgent: settings.HTTP.UserAgent},
		Credentials: credentialsSchema{
			Backend: settings.Credentials.Backend,
			Dir:     settings.Credentials.Dir,
			Profile: settings.Credentials.Profile,
		},
		Log: logSchema{Level: settings.Log.Level, Format: settings.Log.Format},
	}
}

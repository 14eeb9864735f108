package credentials

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FromEnv reads the credential from an environment variable.
func FromEnv(name string) Source {
	return func() string {
		return os.Getenv(name)
	}
}

// FromSecretsFile reads the credential from a TOML secrets file, the
// hosting-platform secret store. A missing or unreadable file is the same as
// an empty source; resolution falls through to the next step.
func FromSecretsFile(path, key string) Source {
	return func() string {
		if path == "" {
			return ""
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		var secrets map[string]string
		if err := toml.Unmarshal(data, &secrets); err != nil {
			return ""
		}
		return secrets[key]
	}
}

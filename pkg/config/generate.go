package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultContent returns the embedded default configuration
func DefaultContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent returns the default configuration with every value
// commented out, suitable as a starting user config file
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// commentOutConfigValues comments out every assignment line, leaving
// comments, blank lines and section headers alone
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

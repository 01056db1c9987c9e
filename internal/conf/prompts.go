package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PromptsConfig contains all prompt configurations loaded from YAML
type PromptsConfig struct {
	Translate TranslatePrompts `yaml:"translate"`
}

// TranslatePrompts contains translation prompts
type TranslatePrompts struct {
	// SystemTemplate is the completion system prompt; %s is replaced with
	// the target language name.
	SystemTemplate string `yaml:"system_template"`
}

// LoadPromptsConfig loads prompts configuration from YAML file
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"./configs/prompts.yaml",
			"/etc/line-translator/prompts.yaml",
		}
		// Add path relative to executable
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	var err error

	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			loadedPath = p
			break
		}
	}

	if data == nil {
		// Return default config if no file found
		fmt.Println("[Config] No prompts.yaml found, using defaults")
		return DefaultPromptsConfig(), nil
	}

	fmt.Printf("[Config] Loading prompts from: %s\n", loadedPath)

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prompts.yaml: %w", err)
	}

	// Fill in defaults for empty values
	config.fillDefaults()

	return &config, nil
}

// DefaultPromptsConfig returns the built-in prompt configuration
func DefaultPromptsConfig() *PromptsConfig {
	return &PromptsConfig{
		Translate: TranslatePrompts{
			SystemTemplate: "You are a professional translator. Translate the user's message into %s. " +
				"Reply with the translation only, no explanations or commentary.",
		},
	}
}

// fillDefaults fills in default values for empty fields
func (c *PromptsConfig) fillDefaults() {
	defaults := DefaultPromptsConfig()

	if c.Translate.SystemTemplate == "" {
		c.Translate.SystemTemplate = defaults.Translate.SystemTemplate
	}
}

package conf

import "testing"

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected missing LINE credentials to fail validation")
	}

	cfg.Line.ChannelSecret = "secret"
	cfg.Line.ChannelAccessToken = "token"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected missing OpenAI key to fail validation")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestDefaultPromptsConfig(t *testing.T) {
	cfg := DefaultPromptsConfig()
	if cfg.Translate.SystemTemplate == "" {
		t.Error("Expected a default translation system template")
	}
}

func TestPromptsConfig_FillDefaults(t *testing.T) {
	cfg := &PromptsConfig{}
	cfg.fillDefaults()
	if cfg.Translate.SystemTemplate == "" {
		t.Error("Expected empty template to be filled with the default")
	}
}

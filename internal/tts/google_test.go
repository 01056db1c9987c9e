package tts

import (
	"strings"
	"testing"
)

func TestSpeechURL(t *testing.T) {
	url := SpeechURL("hello world", "en")

	if !strings.HasPrefix(url, "https://translate.google.com/translate_tts?") {
		t.Errorf("Unexpected URL prefix: %s", url)
	}
	if !strings.Contains(url, "q=hello+world") {
		t.Errorf("Expected escaped query text, got %s", url)
	}
	if !strings.Contains(url, "&tl=en") {
		t.Errorf("Expected target language parameter, got %s", url)
	}
}

func TestSpeechURL_EscapesSpecialCharacters(t *testing.T) {
	url := SpeechURL("a&b=c", "zh-TW")

	if strings.Contains(url, "a&b=c") {
		t.Errorf("Expected special characters escaped, got %s", url)
	}
	if !strings.Contains(url, "tl=zh-TW") {
		t.Errorf("Expected locale code preserved, got %s", url)
	}
}

package domain

import "testing"

func TestLookupLanguage_CanonicalCode(t *testing.T) {
	code, ok := LookupLanguage("ja")
	if !ok {
		t.Fatal("Expected ja to resolve")
	}
	if code != "ja" {
		t.Errorf("Expected ja, got %s", code)
	}
}

func TestLookupLanguage_Alias(t *testing.T) {
	code, ok := LookupLanguage("tw")
	if !ok {
		t.Fatal("Expected tw to resolve")
	}
	if code != "zh-TW" {
		t.Errorf("Expected zh-TW, got %s", code)
	}

	code, ok = LookupLanguage("cn")
	if !ok {
		t.Fatal("Expected cn to resolve")
	}
	if code != "zh-CN" {
		t.Errorf("Expected zh-CN, got %s", code)
	}
}

func TestLookupLanguage_CaseInsensitive(t *testing.T) {
	code, ok := LookupLanguage("JA")
	if !ok || code != "ja" {
		t.Errorf("Expected JA to resolve to ja, got %s ok=%v", code, ok)
	}
	code, ok = LookupLanguage("ZH-TW")
	if !ok || code != "zh-TW" {
		t.Errorf("Expected ZH-TW to resolve to zh-TW, got %s ok=%v", code, ok)
	}
}

func TestLookupLanguage_Unknown(t *testing.T) {
	if _, ok := LookupLanguage("xx"); ok {
		t.Error("Expected xx to be rejected")
	}
	if _, ok := LookupLanguage(""); ok {
		t.Error("Expected empty token to be rejected")
	}
	if _, ok := LookupLanguage("help"); ok {
		t.Error("Expected help to be rejected (not a language)")
	}
}

// Normalization must be idempotent: resolving a resolved code returns it
// unchanged, for every registered code and alias.
func TestLookupLanguage_Idempotent(t *testing.T) {
	tokens := AllLanguageCodes()
	tokens = append(tokens, "tw", "cn")

	for _, token := range tokens {
		first, ok := LookupLanguage(token)
		if !ok {
			t.Fatalf("Expected %s to resolve", token)
		}
		second, ok := LookupLanguage(string(first))
		if !ok {
			t.Fatalf("Expected canonical %s to resolve", first)
		}
		if first != second {
			t.Errorf("Normalization not idempotent for %s: %s != %s", token, first, second)
		}
	}
}

func TestLanguageCode_DisplayName(t *testing.T) {
	if name := LanguageCode("ja").DisplayName(); name != "Japanese" {
		t.Errorf("Expected Japanese, got %s", name)
	}
	// Codes without a display name fall back to the code itself
	if name := LanguageCode("ceb").DisplayName(); name != "ceb" {
		t.Errorf("Expected ceb, got %s", name)
	}
}

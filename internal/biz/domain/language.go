package domain

import (
	"sort"
	"strings"
)

// LanguageCode is a validated language identifier from the registry.
// Values are always canonical: aliases are resolved before a LanguageCode
// is constructed, so unknown or short-form codes never reach callers.
type LanguageCode string

func (c LanguageCode) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for the common languages,
// falling back to the code itself.
func (c LanguageCode) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// aliases maps short-form codes to their canonical locale form.
// Lookup keys are lowercase; canonical codes keep their casing.
var aliases = map[string]LanguageCode{
	"tw":    "zh-TW",
	"cn":    "zh-CN",
	"zh-tw": "zh-TW",
	"zh-cn": "zh-CN",
}

// supportedCodes is the closed registry of ISO 639-1 codes accepted as
// translation targets.
var supportedCodes = []string{
	"af", "am", "ar", "az", "be", "bg", "bn", "bs", "ca", "ceb",
	"co", "cs", "cy", "da", "de", "el", "en", "eo", "es", "et", "eu",
	"fa", "fi", "fr", "fy", "ga", "gd", "gl", "gu", "ha", "haw",
	"he", "hi", "hmn", "hr", "ht", "hu", "hy", "id", "ig", "is",
	"it", "ja", "jw", "ka", "kk", "km", "kn", "ko", "ku", "ky",
	"la", "lb", "lo", "lt", "lv", "mg", "mi", "mk", "ml", "mn",
	"mr", "ms", "mt", "my", "ne", "nl", "no", "ny", "pa", "pl",
	"ps", "pt", "ro", "ru", "rw", "sd", "si", "sk", "sl", "sm",
	"sn", "so", "sq", "sr", "st", "su", "sv", "sw", "ta", "te",
	"tg", "th", "tk", "tl", "tr", "tt", "ug", "uk", "ur", "uz",
	"vi", "xh", "yi", "yo", "zh", "zh-TW", "zh-CN", "zu",
}

var displayNames = map[LanguageCode]string{
	"ar":    "Arabic",
	"de":    "German",
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"id":    "Indonesian",
	"it":    "Italian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"ms":    "Malay",
	"nl":    "Dutch",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"th":    "Thai",
	"vi":    "Vietnamese",
	"zh":    "Chinese",
	"zh-TW": "Traditional Chinese",
	"zh-CN": "Simplified Chinese",
}

// registry maps lowercase lookup keys to canonical codes.
var registry = make(map[string]LanguageCode, len(supportedCodes))

func init() {
	for _, code := range supportedCodes {
		registry[strings.ToLower(code)] = LanguageCode(code)
	}
}

// LookupLanguage resolves a user-supplied token to a canonical LanguageCode.
// Matching is case-insensitive and alias-aware. Resolution is idempotent:
// looking up a canonical code returns it unchanged.
func LookupLanguage(token string) (LanguageCode, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return "", false
	}
	if canonical, ok := aliases[key]; ok {
		return canonical, true
	}
	if canonical, ok := registry[key]; ok {
		return canonical, true
	}
	return "", false
}

// AllLanguageCodes returns every registered canonical code in sorted order,
// for the help text.
func AllLanguageCodes() []string {
	codes := make([]string, len(supportedCodes))
	copy(codes, supportedCodes)
	sort.Strings(codes)
	return codes
}

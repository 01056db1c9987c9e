// Package tts builds synthesized-speech links for translated text.
package tts

import (
	"net/url"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

const baseURL = "https://translate.google.com/translate_tts"

// SpeechURL returns a Google Translate TTS link that reads text aloud in
// the given language. Pure string formatting, no network call.
func SpeechURL(text string, lang domain.LanguageCode) string {
	return baseURL + "?ie=UTF-8&client=tw-ob&q=" + url.QueryEscape(text) + "&tl=" + url.QueryEscape(string(lang))
}

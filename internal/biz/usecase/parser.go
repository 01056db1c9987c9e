package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

// durationPattern matches the NNmin suffix for 1-60 minutes. Anything
// outside that range fails the match and the branch falls through to the
// next grammar rule instead of erroring.
var durationPattern = regexp.MustCompile(`^([1-9]|[1-5][0-9]|60)min$`)

// Parse maps one trimmed message to exactly one Intent. The grammar is
// order-sensitive; rules are tried in this fixed precedence:
//
//  1. exact /help, /whoami, /stop
//  2. /multi <codes> [NNmin] [text]
//  3. /<code> NNmin [text]
//  4. /<code> <text>
//  5. /<code>
//  6. text without a leading slash -> implicit translate
//  7. anything else -> unrecognized
//
// Parse is total and pure: the same input always yields the same Intent.
func Parse(text string) domain.Intent {
	switch text {
	case "/help":
		return domain.Intent{Kind: domain.IntentHelp}
	case "/whoami":
		return domain.Intent{Kind: domain.IntentWhoAmI}
	case "/stop":
		return domain.Intent{Kind: domain.IntentStop}
	}

	if !strings.HasPrefix(text, "/") {
		if text == "" {
			return domain.Intent{Kind: domain.IntentUnrecognized}
		}
		return domain.Intent{Kind: domain.IntentImplicitTranslate, Text: text}
	}

	// The multi-language form is tried before any single-language rule.
	if text == "/multi" || strings.HasPrefix(text, "/multi ") {
		return parseMulti(strings.TrimSpace(strings.TrimPrefix(text, "/multi")))
	}

	head, rest := splitToken(text[1:])
	code, ok := domain.LookupLanguage(head)
	if !ok {
		return domain.Intent{Kind: domain.IntentUnrecognized}
	}

	if rest == "" {
		return domain.Intent{
			Kind:      domain.IntentSetLanguage,
			Languages: []domain.LanguageCode{code},
		}
	}

	if tok, after := splitToken(rest); durationPattern.MatchString(tok) {
		return domain.Intent{
			Kind:      domain.IntentStartTimedSession,
			Languages: []domain.LanguageCode{code},
			Minutes:   parseMinutes(tok),
			Text:      after,
		}
	}

	return domain.Intent{
		Kind:      domain.IntentTranslate,
		Languages: []domain.LanguageCode{code},
		Text:      rest,
	}
}

// parseMulti parses the argument list after "/multi": 1-4 comma or space
// separated language codes, then an optional NNmin duration, then optional
// free text. Language tokens are consumed greedily; inside an explicit
// comma-joined group every member must be a valid code, while the first
// space-separated non-code token after at least one valid code starts the
// free text.
func parseMulti(rest string) domain.Intent {
	if rest == "" {
		return domain.Intent{Kind: domain.IntentInvalidLanguages}
	}

	fields := strings.Fields(rest)
	var codes []domain.LanguageCode
	var rawCodes []string
	i := 0

consume:
	for ; i < len(fields); i++ {
		field := fields[i]
		if strings.Contains(field, ",") {
			var bad []string
			for _, tok := range strings.FieldsFunc(field, isComma) {
				code, ok := domain.LookupLanguage(tok)
				if !ok {
					bad = append(bad, tok)
					continue
				}
				codes = append(codes, code)
				rawCodes = append(rawCodes, tok)
			}
			if len(bad) > 0 {
				return domain.Intent{Kind: domain.IntentInvalidLanguages, BadTokens: bad}
			}
			continue
		}

		code, ok := domain.LookupLanguage(field)
		if !ok {
			if len(codes) == 0 && !durationPattern.MatchString(field) {
				return domain.Intent{Kind: domain.IntentInvalidLanguages, BadTokens: []string{field}}
			}
			break consume
		}
		codes = append(codes, code)
		rawCodes = append(rawCodes, field)
	}

	// Never silently truncate an oversized list.
	if len(codes) == 0 || len(codes) > domain.MaxSessionLanguages {
		return domain.Intent{Kind: domain.IntentInvalidLanguages, BadTokens: rawCodes}
	}

	minutes := 0
	if i < len(fields) && durationPattern.MatchString(fields[i]) {
		minutes = parseMinutes(fields[i])
		i++
	}
	text := strings.Join(fields[i:], " ")

	if minutes == 0 && text != "" {
		return domain.Intent{
			Kind:      domain.IntentMultiTranslate,
			Languages: codes,
			Text:      text,
		}
	}
	return domain.Intent{
		Kind:      domain.IntentStartTimedSession,
		Languages: codes,
		Minutes:   minutes,
		Text:      text,
	}
}

// splitToken splits off the first whitespace-delimited token, returning it
// and the trimmed remainder.
func splitToken(s string) (string, string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func parseMinutes(tok string) int {
	n, _ := strconv.Atoi(strings.TrimSuffix(tok, "min"))
	return n
}

func isComma(r rune) bool {
	return r == ','
}

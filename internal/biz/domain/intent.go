package domain

// IntentKind identifies the command variant a message resolved to.
type IntentKind int

const (
	// IntentUnrecognized is the fallback for text that matched no grammar rule.
	IntentUnrecognized IntentKind = iota
	// IntentHelp is the static /help command.
	IntentHelp
	// IntentWhoAmI is the /whoami command.
	IntentWhoAmI
	// IntentStop is the /stop command.
	IntentStop
	// IntentSetLanguage is a bare /<code> command with no payload text.
	IntentSetLanguage
	// IntentTranslate is a one-shot /<code> <text> translation.
	IntentTranslate
	// IntentStartTimedSession starts or replaces a translation session,
	// optionally bounded by a duration and carrying immediate text.
	IntentStartTimedSession
	// IntentMultiTranslate is a one-shot fan-out over several languages.
	IntentMultiTranslate
	// IntentImplicitTranslate is free text with no command prefix.
	IntentImplicitTranslate
	// IntentInvalidLanguages is a /multi form whose language list failed
	// validation. Distinct from IntentUnrecognized so the reply can name
	// the offending tokens.
	IntentInvalidLanguages
)

// Intent is the parsed form of one inbound message. Exactly one Intent is
// produced per message; which fields are populated depends on Kind.
type Intent struct {
	Kind      IntentKind
	Languages []LanguageCode // SetLanguage, Translate, StartTimedSession, MultiTranslate
	Minutes   int            // StartTimedSession; 0 means no time bound
	Text      string         // payload text, if any
	BadTokens []string       // InvalidLanguages: the tokens that failed validation
}
